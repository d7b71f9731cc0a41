package usecase

import (
	"crypto/subtle"

	"app/internal/config"
)

// AdminUsecase は管理者ゲート。設定のクレデンシャル（デフォルトは元システムの
// 固定値）との一致だけを見る。本物のセキュリティ境界ではない。
type AdminUsecase struct {
	username string
	password string
}

func NewAdminUsecase(cfg config.Config) *AdminUsecase {
	return &AdminUsecase{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
	}
}

// Authenticate はusername/passwordの両方が一致したときだけtrue。
// どちらが誤りかを応答時間からも漏らさないよう定数時間で比較する。
func (u *AdminUsecase) Authenticate(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.password)) == 1
	return userOK && passOK
}
