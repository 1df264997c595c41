package repository

import (
	"context"

	"github.com/IMANOL01277/BollitoPy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VendedorRepository interface {
	Create(ctx context.Context, v *model.VendedorAmbulante) error
	List(ctx context.Context) ([]model.VendedorAmbulante, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type vendedorRepo struct{ db *gorm.DB }

func NewVendedorRepository(db *gorm.DB) VendedorRepository { return &vendedorRepo{db: db} }

func (r *vendedorRepo) Create(ctx context.Context, v *model.VendedorAmbulante) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vendedorRepo) List(ctx context.Context) ([]model.VendedorAmbulante, error) {
	var list []model.VendedorAmbulante
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *vendedorRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.VendedorAmbulante{})
	return res.RowsAffected, res.Error
}
