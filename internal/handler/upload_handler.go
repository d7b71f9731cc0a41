package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"app/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// 商品画像アップロードのHTTP。保存先はローカルディスク（外部コラボレータ扱い）。
type UploadHandler struct {
	uploadDir string
}

// DI
func NewUploadHandler(cfg config.Config) *UploadHandler {
	return &UploadHandler{uploadDir: cfg.UploadDir}
}

// POST /api/uploadImage (multipart)
// クライアントのファイル名を維持して保存する。失敗しても詳細は返さない。
func (h *UploadHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "can't save"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusOK, MessageResponse{Message: "can't save"})
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		logrus.WithError(err).Error("create upload dir failed")
		return c.JSON(http.StatusOK, MessageResponse{Message: "can't save"})
	}

	// パストラバーサル対策にベース名だけを使う
	name := filepath.Base(file.Filename)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		logrus.WithError(err).Error("create image file failed")
		return c.JSON(http.StatusOK, MessageResponse{Message: "can't save"})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		logrus.WithError(err).Error("write image file failed")
		return c.JSON(http.StatusOK, MessageResponse{Message: "can't save"})
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "success"})
}
