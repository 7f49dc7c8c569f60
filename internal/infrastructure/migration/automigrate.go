package migration

import (
	"fmt"

	"gorm.io/gorm"

	"autocrm/internal/infrastructure/persistence/models"
	"autocrm/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model the schema carries.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.UserRoleModel{},
		&models.TeamModel{},
		&models.TicketModel{},
		&models.TicketResponseModel{},
		&models.TicketAttachmentModel{},
	}
}

// GormAutoMigrateStrategy migrates the schema straight from the model structs.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("running gorm auto migrate", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
