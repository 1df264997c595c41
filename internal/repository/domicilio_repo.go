package repository

import (
	"context"

	"github.com/IMANOL01277/BollitoPy/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DomicilioRepository interface {
	CreateTx(tx *gorm.DB, d *model.Domicilio) error
	List(ctx context.Context) ([]model.Domicilio, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type domicilioRepo struct{ db *gorm.DB }

func NewDomicilioRepository(db *gorm.DB) DomicilioRepository { return &domicilioRepo{db: db} }

func (r *domicilioRepo) CreateTx(tx *gorm.DB, d *model.Domicilio) error {
	return tx.Create(d).Error
}

func (r *domicilioRepo) List(ctx context.Context) ([]model.Domicilio, error) {
	var list []model.Domicilio
	err := r.db.WithContext(ctx).Order("fecha_registro DESC").Find(&list).Error
	return list, err
}

func (r *domicilioRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Domicilio{})
	return res.RowsAffected, res.Error
}
