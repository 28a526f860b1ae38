package repositories

import (
	"context"
	"strings"

	"github.com/campushire/jobboard/internal/apperrors"
	"github.com/campushire/jobboard/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user *entities.User) error {
	err := repo.db.WithContext(ctx).Create(user).Error
	if isDuplicateKeyError(err) {
		return apperrors.Conflict("email already registered")
	}
	return err
}

func (repo *Users) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	err := repo.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := repo.db.WithContext(ctx).First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Users) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	return repo.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

func (repo *Users) UpdateAvatar(ctx context.Context, id string, avatar entities.MediaRef) error {
	return repo.db.WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).
		Updates(map[string]any{
			"avatar_id":  avatar.ID,
			"avatar_url": avatar.URL,
		}).Error
}

// isDuplicateKeyError recognizes unique index violations across both
// supported drivers. Postgres reports 23505, sqlite a "UNIQUE constraint
// failed" message; gorm's TranslateError covers most but not all paths.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
