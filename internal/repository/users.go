// internal/repository/users.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobapp-back/internal/apperrors"
	"jobapp-back/internal/models"
)

type GormUsers struct {
	db *gorm.DB
}

func NewGormUsers(db *gorm.DB) *GormUsers {
	return &GormUsers{db: db}
}

func (r *GormUsers) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = models.NewID()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return translateError(err, "user")
	}
	return nil
}

func (r *GormUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "user")
	}
	return &user, nil
}

func (r *GormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, translateError(err, "user")
	}
	return &user, nil
}

func (r *GormUsers) Update(ctx context.Context, user *models.User) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(user)
	if res.Error != nil {
		return translateError(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("user")
	}
	return nil
}

func (r *GormUsers) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error, "user")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("user")
	}
	return nil
}

// FindOrCreate looks a user up by email and creates the record when none
// exists. A concurrent create racing on the unique index is resolved by one
// more lookup.
func (r *GormUsers) FindOrCreate(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := r.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}

	if createErr := r.Create(ctx, user); createErr != nil {
		var appErr *apperrors.Error
		if errors.As(createErr, &appErr) && appErr.Kind == apperrors.KindConflict {
			return r.FindByEmail(ctx, user.Email)
		}
		return nil, createErr
	}
	return user, nil
}
