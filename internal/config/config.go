package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseDSN string // Postgres接続文字列

	AdminUsername string // 管理者ゲートのユーザー名
	AdminPassword string // 管理者ゲートのパスワード

	UploadDir string // 商品画像の保存先ディレクトリ
	FEURL     string // フロントURL（CORSで使う）
}

// Loadは環境変数から設定を読む。
// 管理者クレデンシャルは元システムの固定値をデフォルトに持つ
// （本物のセキュリティ境界ではない。置き換え前提のゲート）。
func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		DatabaseDSN: databaseDSN(),

		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin@123"),

		UploadDir: getenv("UPLOAD_DIR", "../client/src/ProductImage"),
		FEURL:     getenv("FE_URL", "*"),
	}
}

// DATABASE_URL があれば最優先で使う。無ければPOSTGRES_*から組み立てる。
func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := getenv("POSTGRES_HOST", "localhost")
	port := getenv("POSTGRES_PORT", "5432")
	user := getenv("POSTGRES_USER", "postgres")
	pass := getenv("POSTGRES_PASSWORD", "postgres")
	name := getenv("POSTGRES_DB", "app")
	ssl := getenv("POSTGRES_SSLMODE", "disable")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, ssl,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
