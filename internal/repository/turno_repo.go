package repository

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"

	"gorm.io/gorm"
)

type TurnoRepository interface {
	Create(ctx context.Context, t *model.Turno) error
	FindByID(ctx context.Context, id uint) (*model.Turno, error)
	Existe(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter dto.PageFilter) ([]model.Turno, int64, error)
	Update(ctx context.Context, t *model.Turno) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type turnoRepo struct{ db *gorm.DB }

func NewTurnoRepository(db *gorm.DB) TurnoRepository { return &turnoRepo{db: db} }

func (r *turnoRepo) Create(ctx context.Context, t *model.Turno) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *turnoRepo) FindByID(ctx context.Context, id uint) (*model.Turno, error) {
	var t model.Turno
	err := r.db.WithContext(ctx).Preload("EstadoTurno").First(&t, id).Error
	return &t, err
}

func (r *turnoRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Turno{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *turnoRepo) List(ctx context.Context, filter dto.PageFilter) ([]model.Turno, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Turno{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var turnos []model.Turno
	err := q.Preload("EstadoTurno").
		Order("fecha_hora ASC").
		Offset(filter.Offset()).Limit(filter.PageSize).
		Find(&turnos).Error
	return turnos, total, err
}

func (r *turnoRepo) Update(ctx context.Context, t *model.Turno) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Turno{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"fecha_hora":      t.FechaHora,
			"estado_turno_id": t.EstadoTurnoID,
		})
	return res.RowsAffected, res.Error
}

func (r *turnoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Turno{}, id).Error
}
