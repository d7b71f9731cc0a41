package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	// name先頭一致（最小ID）で1件。無ければErrNotFound。
	FindByName(ctx context.Context, name string) (model.Product, error)
	// 0件は空スライス（エラーではない）。
	FindByCategory(ctx context.Context, category string) ([]model.Product, error)
	FindByBrand(ctx context.Context, brand string) ([]model.Product, error)
	// 両端を含む。境界は呼び出し側で整数へ切り捨て済み。
	FindByPriceRange(ctx context.Context, minPrice, maxPrice int64) ([]model.Product, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// 0件更新はErrNotFound（黙ってno-opにしない）。
	UpdatePrice(ctx context.Context, name string, price float64) error
	UpdateBrand(ctx context.Context, name string, brand string) error
	DeleteByName(ctx context.Context, name string) error
}
