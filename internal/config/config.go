package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DBDriver   string // sqlite / postgres
	SQLitePath string // sqlite使用時のファイルパス

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SessionSecret string // セッションJWTの署名シークレット
	CookieSecure  bool   // セッションCookieのSecure属性

	AdminEmail    string // 初期シードの管理者メール
	AdminPassword string // 初期シードの管理者パスワード

	GoEnv string // dev/prod
}

// Loadは環境変数から設定を読む。未設定は開発用デフォルト。
func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		DBDriver:   getenv("DB_DRIVER", "sqlite"),
		SQLitePath: getenv("SQLITE_PATH", "vinylvibe.db"),

		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),
		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "vinylvibe"),
		PostgresSSLMode:  getenv("POSTGRES_SSLMODE", "disable"),

		SessionSecret: getenv("SESSION_SECRET", "dev_secret_change_me"),
		CookieSecure:  envBool("COOKIE_SECURE", false),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@vinylvibe.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),

		GoEnv: getenv("GO_ENV", "dev"),
	}
}

// PostgresDSNはgorm/postgres用のDSNを組み立てる。
// DATABASE_URL があれば最優先で使う
func (c Config) PostgresDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	switch v {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
