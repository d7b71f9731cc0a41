package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// カート系エンドポイントのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddToCartRequest struct {
	Email   string            `json:"email"`
	Product usecase.CartEntry `json:"product"`
}

type RemoveFromCartRequest struct {
	Email       string `json:"email"`
	ProductName string `json:"productName"`
}

type RemoveFromCartResponse struct {
	Message string              `json:"message"`
	Product []usecase.CartEntry `json:"product"`
}

type CartEmailRequest struct {
	Email string `json:"email"`
}

type EnrichedCartResponse struct {
	Message  string              `json:"message"`
	Products []usecase.CartEntry `json:"products"`
}

// POST /api/addToCart
func (h *CartHandler) AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.Product == nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing product"})
	}

	_, err := h.uc.AddToCart(c.Request().Context(), req.Email, req.Product)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "product added successfully to cart"})
}

// POST /api/removeFromCart
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	var req RemoveFromCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	snap, err := h.uc.RemoveFromCart(c.Request().Context(), req.Email, req.ProductName)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, RemoveFromCartResponse{
		Message: "product removed successfully",
		Product: snap.Items,
	})
}

// POST /api/getAllCart
func (h *CartHandler) GetAllCart(c echo.Context) error {
	carts, err := h.uc.ListCarts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, carts)
}

// POST /api/getCartItemOfUser
// 各明細に現在のproductImageを付けて返す
func (h *CartHandler) GetCartItemOfUser(c echo.Context) error {
	var req CartEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	products, err := h.uc.GetCartItemsWithImages(c.Request().Context(), req.Email)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, EnrichedCartResponse{
		Message:  "success",
		Products: products,
	})
}
