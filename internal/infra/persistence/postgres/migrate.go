package postgres

import (
	"context"

	"academia/internal/errors"
	"academia/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// schemaStatements run after AutoMigrate for constraints GORM tags cannot express.
var schemaStatements = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + constraintUsersHandle + ` ON users (lower(handle)) WHERE handle IS NOT NULL`,
}

// Migrate creates or updates the schema of every persistence model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)
	if err := tx.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	for _, stmt := range schemaStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to apply schema statement %q", stmt)
		}
	}

	return nil
}
