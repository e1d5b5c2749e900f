package repository

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	// FindByEmail matches exactly, active or inactive — login must not
	// distinguish the two.
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	// ExisteEmail checks uniqueness case-insensitively across active and
	// inactive rows, optionally excluding one id (for updates).
	ExisteEmail(ctx context.Context, email string, excluirID uint) (bool, error)
	Existe(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter dto.PageFilter) ([]model.Usuario, int64, error)
	ListByRol(ctx context.Context, rolID uint, filter dto.PageFilter) ([]model.Usuario, int64, error)
	ListConAcceso(ctx context.Context, filter dto.PageFilter) ([]model.Usuario, int64, error)
	Update(ctx context.Context, u *model.Usuario) error
	SoftDelete(ctx context.Context, id uint) error
	CambiarEstado(ctx context.Context, id uint, activo bool) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Preload("Rol").First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) ExisteEmail(ctx context.Context, email string, excluirID uint) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("LOWER(email) = LOWER(?)", email)
	if excluirID != 0 {
		q = q.Where("id <> ?", excluirID)
	}
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *usuarioRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *usuarioRepo) List(ctx context.Context, filter dto.PageFilter) ([]model.Usuario, int64, error) {
	return r.list(ctx, filter, r.db.WithContext(ctx).Model(&model.Usuario{}).Where("activo = true"))
}

func (r *usuarioRepo) ListByRol(ctx context.Context, rolID uint, filter dto.PageFilter) ([]model.Usuario, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("activo = true AND rol_id = ?", rolID)
	return r.list(ctx, filter, q)
}

func (r *usuarioRepo) ListConAcceso(ctx context.Context, filter dto.PageFilter) ([]model.Usuario, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("activo = true AND accede_al_sistema = true")
	return r.list(ctx, filter, q)
}

func (r *usuarioRepo) list(ctx context.Context, filter dto.PageFilter, q *gorm.DB) ([]model.Usuario, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var usuarios []model.Usuario
	err := q.Order("nombre ASC").Offset(filter.Offset()).Limit(filter.PageSize).Find(&usuarios).Error
	return usuarios, total, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *usuarioRepo) CambiarEstado(ctx context.Context, id uint, activo bool) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", activo).Error
}
