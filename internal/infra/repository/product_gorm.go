package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 全商品を取得
func (r *ProductGormRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	if err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// nameで1件取得（重複時は最小ID＝先頭一致）
func (r *ProductGormRepository) FindByName(ctx context.Context, name string) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("product_name = ?", name).
		Order("id asc").
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// カテゴリで絞り込み（0件は空スライス）
func (r *ProductGormRepository) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product

	if err := r.db.WithContext(ctx).
		Where("product_category = ?", category).
		Order("id asc").
		Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// ブランドで絞り込み
func (r *ProductGormRepository) FindByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	var products []model.Product

	if err := r.db.WithContext(ctx).
		Where("product_brand = ?", brand).
		Order("id asc").
		Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// 価格帯で絞り込み（両端を含む。境界は整数に切り捨て済みの値）
func (r *ProductGormRepository) FindByPriceRange(ctx context.Context, minPrice, maxPrice int64) ([]model.Product, error) {
	var products []model.Product

	if err := r.db.WithContext(ctx).
		Where("product_price >= ? AND product_price <= ?", minPrice, maxPrice).
		Order("id asc").
		Find(&products).Error; err != nil {
		return []model.Product{}, err
	}

	return products, nil
}

// ブランドの重複なし一覧
func (r *ProductGormRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	var brands []string

	if err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("product_brand").
		Pluck("product_brand", &brands).Error; err != nil {
		return []string{}, err
	}

	return brands, nil
}

// カテゴリの重複なし一覧
func (r *ProductGormRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("product_category").
		Pluck("product_category", &categories).Error; err != nil {
		return []string{}, err
	}

	return categories, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 価格の更新。0件更新は「対象がない」
func (r *ProductGormRepository) UpdatePrice(ctx context.Context, name string, price float64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_name = ?", name).
		Update("product_price", price)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ブランドの更新
func (r *ProductGormRepository) UpdateBrand(ctx context.Context, name string, brand string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("product_name = ?", name).
		Update("product_brand", brand)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除
func (r *ProductGormRepository) DeleteByName(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).
		Where("product_name = ?", name).
		Delete(&model.Product{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
