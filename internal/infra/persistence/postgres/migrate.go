package postgres

import (
	"context"

	"addressbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the address book schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return errors.Wrap(err, "failed to enable uuid-ossp")
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.AddressModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate addresses table")
	}

	return nil
}
