// Package catalog is the read-only product provider backing the storefront.
// The cart only ever holds copies of its records and never writes back.
package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/alisha-attire/storefront/internal/models"
)

var ErrNotFound = errors.New("product not found")

type Repo struct {
	DB *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{DB: db}
}

// List returns one page of products in stable ID order plus the total count.
func (r *Repo) List(ctx context.Context, offset, limit int) (int64, []models.Product, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var items []models.Product
	err := r.DB.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return 0, nil, err
	}
	return total, items, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// All returns the whole catalog, used by the in-memory search fallback.
func (r *Repo) All(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Seed inserts the default collection when the catalog is empty.
func (r *Repo) Seed(ctx context.Context) error {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	products := defaultProducts()
	return r.DB.WithContext(ctx).Create(&products).Error
}
