// internal/repository/submissions.go
package repository

import (
	"context"

	"gorm.io/gorm"

	"jobapp-back/internal/apperrors"
	"jobapp-back/internal/models"
)

type GormSubmissions struct {
	db *gorm.DB
}

func NewGormSubmissions(db *gorm.DB) *GormSubmissions {
	return &GormSubmissions{db: db}
}

func (r *GormSubmissions) Create(ctx context.Context, sub *models.Submission) error {
	if sub.ID == "" {
		sub.ID = models.NewID()
	}
	if sub.Status == "" {
		sub.Status = models.StatusPending
	}
	if err := r.db.WithContext(ctx).Create(sub).Error; err != nil {
		return translateError(err, "submission")
	}
	return nil
}

func (r *GormSubmissions) FindByID(ctx context.Context, id string) (*models.Submission, error) {
	var sub models.Submission
	if err := r.db.WithContext(ctx).Preload("User").First(&sub, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "submission")
	}
	return &sub, nil
}

func (r *GormSubmissions) FindByUserID(ctx context.Context, userID string, page Page) ([]models.Submission, int64, error) {
	return r.list(ctx, page, "submissions.user_id = ?", userID)
}

func (r *GormSubmissions) FindByStatus(ctx context.Context, status string, page Page) ([]models.Submission, int64, error) {
	return r.list(ctx, page, "submissions.status = ?", status)
}

func (r *GormSubmissions) list(ctx context.Context, page Page, cond string, arg any) ([]models.Submission, int64, error) {
	page = page.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Submission{}).Where(cond, arg).Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "submission")
	}

	// Sort columns may live on users, so the listing always joins it. The
	// select stays restricted to submissions to keep the scan unambiguous.
	var subs []models.Submission
	err := r.db.WithContext(ctx).
		Select("submissions.*").
		Joins("LEFT JOIN users ON users.id = submissions.user_id").
		Preload("User").
		Where(cond, arg).
		Order(page.OrderClause()).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&subs).Error
	if err != nil {
		return nil, 0, translateError(err, "submission")
	}
	return subs, total, nil
}

// UpdateStatus sets the status and, when pdfPath is non-empty, the generated
// PDF path in one write.
func (r *GormSubmissions) UpdateStatus(ctx context.Context, id, status, pdfPath string) error {
	fields := map[string]any{"status": status}
	if pdfPath != "" {
		fields["generated_pdf_path"] = pdfPath
	}
	return r.Update(ctx, id, fields)
}

func (r *GormSubmissions) Update(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&models.Submission{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateError(res.Error, "submission")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("submission")
	}
	return nil
}

func (r *GormSubmissions) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Submission{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error, "submission")
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("submission")
	}
	return nil
}

var _ Users = (*GormUsers)(nil)
var _ Submissions = (*GormSubmissions)(nil)
