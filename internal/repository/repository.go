// internal/repository/repository.go
package repository

import (
	"context"

	"jobapp-back/internal/models"
)

// Users is the persistence contract for user records.
type Users interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	FindOrCreate(ctx context.Context, user *models.User) (*models.User, error)
}

// Submissions is the persistence contract for submission records. All reads
// return the submission with its owning user populated.
type Submissions interface {
	Create(ctx context.Context, sub *models.Submission) error
	FindByID(ctx context.Context, id string) (*models.Submission, error)
	FindByUserID(ctx context.Context, userID string, page Page) ([]models.Submission, int64, error)
	FindByStatus(ctx context.Context, status string, page Page) ([]models.Submission, int64, error)
	UpdateStatus(ctx context.Context, id, status, pdfPath string) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
