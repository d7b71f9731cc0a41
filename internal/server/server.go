package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers はルーティングに必要なハンドラ一式。
type Handlers struct {
	User    *handler.UserHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Admin   *handler.AdminHandler
	Upload  *handler.UploadHandler
}

// New はミドルウェアとルートを設定したechoを返す。
// Recoverでリクエスト中の異常はプロセスを落とさず500に閉じ込める。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	RegisterRoutes(e, h)
	return e
}

func Start(addr string, cfg config.Config, h Handlers) error {
	e := New(cfg, h)
	return e.Start(addr)
}
