package repository

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/model"

	"gorm.io/gorm"
)

type ImagenRepository interface {
	Create(ctx context.Context, img *model.Imagen) error
	FindByID(ctx context.Context, id uint) (*model.Imagen, error)
	// FindActiva resolves the single active image of one owner.
	FindActiva(ctx context.Context, tipo string, idRelacionado uint) (*model.Imagen, error)
	// FindActivasPorOwners resolves active images for a whole page of owners
	// in one query, keyed by owner id. Replaces per-row point lookups.
	FindActivasPorOwners(ctx context.Context, tipo string, ids []uint) (map[uint]model.Imagen, error)
	ListByOwner(ctx context.Context, tipo string, idRelacionado uint) ([]model.Imagen, error)
	Update(ctx context.Context, img *model.Imagen) error
	Delete(ctx context.Context, id uint) error
	DeleteByOwner(ctx context.Context, tipo string, idRelacionado uint) error
}

type imagenRepo struct{ db *gorm.DB }

func NewImagenRepository(db *gorm.DB) ImagenRepository { return &imagenRepo{db: db} }

func (r *imagenRepo) Create(ctx context.Context, img *model.Imagen) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *imagenRepo) FindByID(ctx context.Context, id uint) (*model.Imagen, error) {
	var img model.Imagen
	err := r.db.WithContext(ctx).First(&img, id).Error
	return &img, err
}

func (r *imagenRepo) FindActiva(ctx context.Context, tipo string, idRelacionado uint) (*model.Imagen, error) {
	var img model.Imagen
	err := r.db.WithContext(ctx).
		Where("tipo_imagen = ? AND id_relacionado = ? AND activo = true", tipo, idRelacionado).
		First(&img).Error
	return &img, err
}

func (r *imagenRepo) FindActivasPorOwners(ctx context.Context, tipo string, ids []uint) (map[uint]model.Imagen, error) {
	result := make(map[uint]model.Imagen, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var imagenes []model.Imagen
	err := r.db.WithContext(ctx).
		Where("tipo_imagen = ? AND id_relacionado IN ? AND activo = true", tipo, ids).
		Find(&imagenes).Error
	if err != nil {
		return nil, err
	}
	for _, img := range imagenes {
		result[img.IdRelacionado] = img
	}
	return result, nil
}

func (r *imagenRepo) ListByOwner(ctx context.Context, tipo string, idRelacionado uint) ([]model.Imagen, error) {
	var imagenes []model.Imagen
	err := r.db.WithContext(ctx).
		Where("tipo_imagen = ? AND id_relacionado = ?", tipo, idRelacionado).
		Find(&imagenes).Error
	return imagenes, err
}

func (r *imagenRepo) Update(ctx context.Context, img *model.Imagen) error {
	return r.db.WithContext(ctx).Save(img).Error
}

func (r *imagenRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Imagen{}, id).Error
}

func (r *imagenRepo) DeleteByOwner(ctx context.Context, tipo string, idRelacionado uint) error {
	return r.db.WithContext(ctx).
		Where("tipo_imagen = ? AND id_relacionado = ?", tipo, idRelacionado).
		Delete(&model.Imagen{}).Error
}
