package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emirhanakgul/toolshop-backend/internal/dto"
	"github.com/emirhanakgul/toolshop-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

// UserService owns the typed users table. Users are keyed by email and are
// never hard-deleted.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Upsert inserts the user or merges the provided profile fields into the
// existing row, as a single statement keyed on email. Identical payloads are
// idempotent. Role cannot be touched from here.
func (s *UserService) Upsert(ctx context.Context, email string, req dto.UpsertUserRequest) (*models.User, error) {
	user := models.User{Email: email, Role: "user"}
	updates := map[string]interface{}{}

	if req.Name != nil {
		user.Name = *req.Name
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
		updates["address"] = *req.Address
	}
	if req.ImageURL != nil {
		user.ImageURL = *req.ImageURL
		updates["image_url"] = *req.ImageURL
	}

	onConflict := clause.OnConflict{Columns: []clause.Column{{Name: "email"}}}
	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		onConflict.DoUpdates = clause.Assignments(updates)
	} else {
		onConflict.DoNothing = true
	}

	if err := s.db.WithContext(ctx).Clauses(onConflict).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &user, nil
}

// ByEmail returns the user record, or (nil, nil) when absent.
func (s *UserService) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	return &user, nil
}

func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Promote sets role=admin on an existing user and returns the matched count.
// It does not upsert: promoting a nonexistent user matches 0 rows.
func (s *UserService) Promote(ctx context.Context, email string) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{"role": models.RoleAdmin, "updated_at": time.Now()})
	if res.Error != nil {
		return 0, fmt.Errorf("promote user: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// RoleByEmail backs the admin gate. Exactly one read; ErrUserNotFound when
// no record exists.
func (s *UserService) RoleByEmail(ctx context.Context, email string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Select("role").First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("role lookup: %w", err)
	}
	return user.Role, nil
}

// IsAdmin backs the public admin probe. An unknown email is simply not an
// admin, not an error.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	var user models.User
	err := s.db.WithContext(ctx).Select("role").First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("admin probe: %w", err)
	}
	return user.IsAdmin(), nil
}
