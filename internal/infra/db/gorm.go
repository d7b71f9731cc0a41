package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect は渡されたDSNでDBに接続して *gorm.DB を返す。
// DSNの解決（DATABASE_URL / POSTGRES_*）はconfig側の責務。
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
