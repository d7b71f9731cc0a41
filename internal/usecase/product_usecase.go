package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/sirupsen/logrus"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// createProductの入力DTO。全フィールド必須（presenceはhandler側のvalidator）。
type CreateProductInput struct {
	Name        string
	Price       float64
	Category    string
	Brand       string
	Description string
	Image       string
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (model.Product, error) {
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	p := model.Product{
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Brand:       in.Brand,
		Description: in.Description,
		Image:       in.Image,
	}

	created, err := u.productRepo.Create(ctx, p)
	if err != nil {
		// 原因はログに残し、レスポンスには出さない
		logrus.WithError(err).Error("create product failed")
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return created, nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("list products failed")
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// 先頭一致で1件
func (u *ProductUsecase) GetProductByName(ctx context.Context, name string) (model.Product, error) {
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product name")
	}

	p, err := u.productRepo.FindByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		logrus.WithError(err).Error("find product failed")
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// 0件は空スライスで返す（エラーと区別する）
func (u *ProductUsecase) GetProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := u.productRepo.FindByCategory(ctx, category)
	if err != nil {
		logrus.WithError(err).Error("find products by category failed")
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

func (u *ProductUsecase) GetProductsByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	products, err := u.productRepo.FindByBrand(ctx, brand)
	if err != nil {
		logrus.WithError(err).Error("find products by brand failed")
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

// 価格帯検索。境界は整数へ切り捨ててから比較する（元システムのint()キャストを踏襲）。
// 例: endPrice=20.9 は 20 として扱われる。
func (u *ProductUsecase) GetProductsByPriceRange(ctx context.Context, startPrice, endPrice float64) ([]model.Product, error) {
	minPrice := int64(startPrice)
	maxPrice := int64(endPrice)

	if minPrice > maxPrice {
		return nil, NewHTTPError(http.StatusBadRequest, "startPrice must be <= endPrice")
	}

	products, err := u.productRepo.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		logrus.WithError(err).Error("find products by price range failed")
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return products, nil
}

type BrandsResponse struct {
	Brands []string `json:"brands"`
}

type CategoriesResponse struct {
	Category []string `json:"category"`
}

func (u *ProductUsecase) ListBrands(ctx context.Context) (BrandsResponse, error) {
	brands, err := u.productRepo.DistinctBrands(ctx)
	if err != nil {
		logrus.WithError(err).Error("list brands failed")
		return BrandsResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return BrandsResponse{Brands: brands}, nil
}

func (u *ProductUsecase) ListCategories(ctx context.Context) (CategoriesResponse, error) {
	categories, err := u.productRepo.DistinctCategories(ctx)
	if err != nil {
		logrus.WithError(err).Error("list categories failed")
		return CategoriesResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CategoriesResponse{Category: categories}, nil
}

// 価格変更。対象が無ければ404（黙ってno-opにしない）
func (u *ProductUsecase) ChangePrice(ctx context.Context, name string, price float64) error {
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product name")
	}
	if price < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	err := u.productRepo.UpdatePrice(ctx, name, price)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		logrus.WithError(err).Error("update price failed")
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// ブランド変更
func (u *ProductUsecase) ChangeBrand(ctx context.Context, name string, brand string) error {
	if name == "" || brand == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product name or brand")
	}

	err := u.productRepo.UpdateBrand(ctx, name, brand)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		logrus.WithError(err).Error("update brand failed")
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 商品削除
func (u *ProductUsecase) RemoveProduct(ctx context.Context, name string) error {
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid product name")
	}

	err := u.productRepo.DeleteByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		logrus.WithError(err).Error("remove product failed")
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
