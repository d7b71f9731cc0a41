package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品系エンドポイントのHTTP
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// 全フィールド必須。Priceはポインタにして「0円」と「未指定」を区別する。
type CreateProductRequest struct {
	ProductName        string   `json:"productName" validate:"required"`
	ProductPrice       *float64 `json:"productPrice" validate:"required"`
	ProductCategory    string   `json:"productCategory" validate:"required"`
	ProductBrand       string   `json:"productBrand" validate:"required"`
	ProductDescription string   `json:"productDescription" validate:"required"`
	ProductImage       string   `json:"productImage" validate:"required"`
}

type ProductNameRequest struct {
	ProductName string `json:"productName"`
}

type ProductCategoryRequest struct {
	ProductCategory string `json:"productCategory"`
}

type ProductBrandRequest struct {
	ProductBrand string `json:"productBrand"`
}

type PriceRangeRequest struct {
	StartPrice float64 `json:"startPrice"`
	EndPrice   float64 `json:"endPrice"`
}

type ChangePriceRequest struct {
	ProductName  string   `json:"productName"`
	ProductPrice *float64 `json:"productPrice"`
}

type ChangeBrandRequest struct {
	ProductName  string `json:"productName"`
	ProductBrand string `json:"productBrand"`
}

// POST /api/createProduct
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required field"})
	}

	_, err := h.uc.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Name:        req.ProductName,
		Price:       *req.ProductPrice,
		Category:    req.ProductCategory,
		Brand:       req.ProductBrand,
		Description: req.ProductDescription,
		Image:       req.ProductImage,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product Created Successfully!"})
}

// POST /api/getAllProducts
func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// POST /api/getProductByName
func (h *ProductHandler) GetProductByName(c echo.Context) error {
	var req ProductNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.GetProductByName(c.Request().Context(), req.ProductName)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"product": p})
}

// POST /api/getProductByCategory
// 0件は空配列の200（エラーではない）
func (h *ProductHandler) GetProductByCategory(c echo.Context) error {
	var req ProductCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	products, err := h.uc.GetProductsByCategory(c.Request().Context(), req.ProductCategory)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// POST /api/getProductByBrand
func (h *ProductHandler) GetProductByBrand(c echo.Context) error {
	var req ProductBrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	products, err := h.uc.GetProductsByBrand(c.Request().Context(), req.ProductBrand)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// POST /api/getProductByPriceRange
func (h *ProductHandler) GetProductByPriceRange(c echo.Context) error {
	var req PriceRangeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	products, err := h.uc.GetProductsByPriceRange(c.Request().Context(), req.StartPrice, req.EndPrice)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

// GET /api/getAllBrands
func (h *ProductHandler) GetAllBrands(c echo.Context) error {
	out, err := h.uc.ListBrands(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// GET /api/getAllCategories
func (h *ProductHandler) GetAllCategories(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// POST /api/changeProductPrice
func (h *ProductHandler) ChangeProductPrice(c echo.Context) error {
	var req ChangePriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ProductPrice == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required field"})
	}

	if err := h.uc.ChangePrice(c.Request().Context(), req.ProductName, *req.ProductPrice); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Price Changed Successfully"})
}

// POST /api/changeProductBrand
func (h *ProductHandler) ChangeProductBrand(c echo.Context) error {
	var req ChangeBrandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.ChangeBrand(c.Request().Context(), req.ProductName, req.ProductBrand); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Brand Changed Successfully"})
}

// POST /api/removeProduct
func (h *ProductHandler) RemoveProduct(c echo.Context) error {
	var req ProductNameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.RemoveProduct(c.Request().Context(), req.ProductName); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product Removed Successfully"})
}
