package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/izlekapp/izlek_backend_v1/internal/config"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates one JSONB document table per collection plus the lookup
// indexes. The unique index on the room code backs the retry-on-collision
// logic in the room service.
func Migrate(db *gorm.DB) error {
	for _, col := range store.Collections() {
		stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (id BIGSERIAL PRIMARY KEY, doc JSONB NOT NULL)", col)
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_rooms_code ON rooms ((doc->>'code'))",
		"CREATE INDEX IF NOT EXISTS idx_profiles_firebase_uid ON profiles ((doc->>'firebase_uid'))",
		"CREATE INDEX IF NOT EXISTS idx_programs_profile_id ON programs ((doc->>'profile_id'))",
		"CREATE INDEX IF NOT EXISTS idx_messages_room_id ON messages ((doc->>'room_id'))",
		"CREATE INDEX IF NOT EXISTS idx_exam_results_firebase_uid ON exam_results ((doc->>'firebase_uid'))",
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
