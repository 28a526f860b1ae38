package repositories

import (
	"fmt"

	"github.com/campushire/jobboard/internal/entities"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(driver, connectionString string) (*DbContext, error) {

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(connectionString)
	case "sqlite":
		dialector = sqlite.Open(connectionString)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.User{})
	if err != nil {
		return fmt.Errorf("failed to migrate User entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.StudentProfile{})
	if err != nil {
		return fmt.Errorf("failed to migrate StudentProfile entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.EmployerProfile{})
	if err != nil {
		return fmt.Errorf("failed to migrate EmployerProfile entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Job{})
	if err != nil {
		return fmt.Errorf("failed to migrate Job entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Application{})
	if err != nil {
		return fmt.Errorf("failed to migrate Application entity: %w", err)
	}

	// One application per (job, applicant) pair. The index, not the service
	// layer, is what guarantees this under concurrent submissions.
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_job_applicant ON applications (job_id, applicant_id)").
		Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
