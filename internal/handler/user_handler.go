package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ユーザー系エンドポイントのHTTP
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required"`
}

type CreateUserResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type AuthUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GetUserByIDRequest struct {
	ID int64 `json:"id"`
}

type GetUserByTokenRequest struct {
	Token string `json:"token"`
}

// POST /api/createUser
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "VALIDATION_ERROR"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "VALIDATION_ERROR"})
	}

	_, err := h.uc.CreateUser(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case usecase.ErrValidation:
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "VALIDATION_ERROR"})
		case usecase.ErrConflict:
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "CONFLICT"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "INTERNAL"})
		}
	}

	return c.JSON(http.StatusOK, CreateUserResponse{
		Message: "user created successfully",
		Status:  http.StatusOK,
	})
}

// POST /api/authUser
func (h *UserHandler) AuthUser(c echo.Context) error {
	var req AuthUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "VALIDATION_ERROR"})
	}

	out, err := h.uc.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case usecase.ErrUnauthorized:
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "UNAUTHORIZED"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "INTERNAL"})
		}
	}

	return c.JSON(http.StatusOK, out)
}

// POST /api/getAllUsers
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "INTERNAL"})
	}

	return c.JSON(http.StatusOK, users)
}

// POST /api/getUserById
func (h *UserHandler) GetUserByID(c echo.Context) error {
	var req GetUserByIDRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "VALIDATION_ERROR"})
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), req.ID)
	if err != nil {
		switch err {
		case usecase.ErrNotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "NOT_FOUND"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "INTERNAL"})
		}
	}

	return c.JSON(http.StatusOK, user)
}

// POST /api/getUserByToken
func (h *UserHandler) GetUserByToken(c echo.Context) error {
	var req GetUserByTokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "VALIDATION_ERROR"})
	}

	user, err := h.uc.GetUserByToken(c.Request().Context(), req.Token)
	if err != nil {
		switch err {
		case usecase.ErrNotFound:
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "NOT_FOUND"})
		default:
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "INTERNAL"})
		}
	}

	return c.JSON(http.StatusOK, user)
}
