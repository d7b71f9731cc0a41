package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理者ゲートのHTTP
type AdminHandler struct {
	uc *usecase.AdminUsecase
}

// DI
func NewAdminHandler(uc *usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

type AuthAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/authAdmin
// 応答は元システムと同じ生のJSON文字列（"success" / "invalid"）
func (h *AdminHandler) AuthAdmin(c echo.Context) error {
	var req AuthAdminRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, "invalid")
	}

	if !h.uc.Authenticate(req.Username, req.Password) {
		return c.JSON(http.StatusUnauthorized, "invalid")
	}

	return c.JSON(http.StatusOK, "success")
}
