package configs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config is built once in main and injected into every component that
// needs it. No package-level mutable state.
type Config struct {
	Port         string
	DBPath       string
	AdminKey     string
	CookieMaxAge time.Duration
}

// =======================
// ENV LOADER
// =======================
func Load() *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	cfg := &Config{
		Port:         GetEnv("PORT", "3000"),
		DBPath:       GetEnv("DB_PATH", "submissions.db"),
		AdminKey:     GetEnv("ADMIN_KEY"),
		CookieMaxAge: 14 * 24 * time.Hour,
	}

	if cfg.AdminKey == "" {
		log.Println("❌ ADMIN_KEY is not set! /admin/submissions will reject every request")
	} else {
		log.Println("✅ ADMIN_KEY loaded.")
	}
	log.Printf("✅ Using database file: %s", cfg.DBPath)

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
