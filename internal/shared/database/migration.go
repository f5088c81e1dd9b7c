package database

import (
	"fmt"
	"log/slog"

	"github.com/minjikang/book-community/go-api-server/internal/config"
	"github.com/minjikang/book-community/go-api-server/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("⏭️  데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("🔧 데이터베이스 마이그레이션 시작 - 모든 테이블이 삭제되고 재생성됩니다!",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("🚨 PRODUCTION 환경에서는 DB_AUTO_MIGRATE=true를 사용할 수 없습니다! 데이터 손실 방지를 위해 차단됨")
	}

	// Step 1: Drop all tables
	slog.Info("🗑️  기존 테이블 삭제 중...")

	// Order matters: drop child tables before their parents
	dropOrder := []interface{}{
		&model.ThreadEntry{},
		&model.Thread{},
		&model.Comment{},
		&model.Post{},
		&model.BookReview{},
		&model.NicknameChange{},
		&model.Member{},
	}

	for _, m := range dropOrder {
		if db.Migrator().HasTable(m) {
			if err := db.Migrator().DropTable(m); err != nil {
				slog.Debug("테이블 삭제 실패", "model", fmt.Sprintf("%T", m), "error", err)
			} else {
				slog.Debug("테이블 삭제 성공", "model", fmt.Sprintf("%T", m))
			}
		}
	}

	// Step 2: Create tables
	slog.Info("📦 새 테이블 생성 중...")
	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("✅ 마이그레이션 완료!")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	// 중요: 의존성 순서대로 생성
	// 참고: 이 스키마는 DB 레벨 FK 제약을 사용하지 않는다 (thread_main의
	// 고아 정리가 애플리케이션에서 수행되는 이유)
	models := []interface{}{
		&model.Member{},
		&model.NicknameChange{},
		&model.BookReview{},
		&model.Post{},
		&model.Comment{},
		&model.Thread{},
		&model.ThreadEntry{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
