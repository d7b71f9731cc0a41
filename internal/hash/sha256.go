// Package hash はパスワード保存とトークン導出に使う一方向ダイジェスト。
// 無salt・決定的（同じ入力は常に同じ出力）。トークンはSum(email)なので
// emailを知っていれば誰でも再計算できる。既知の弱点として仕様のまま残す。
package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// usecaseが依存する約束
type Hasher interface {
	Sum(secret string) string
}

type SHA256Hasher struct{}

func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{}
}

// Sum は64文字の小文字hexダイジェストを返す。
func (h *SHA256Hasher) Sum(secret string) string {
	d := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(d[:])
}
