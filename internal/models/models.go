// internal/models/models.go
package models

import (
	"time"
)

// Submission statuses. REJECTED is reserved for moderation flows and is
// never assigned by the current pipeline.
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusRejected   = "REJECTED"
)

// ValidStatus reports whether s is one of the known submission statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        string    `gorm:"primaryKey;size:20" json:"id"`
	FirstName string    `gorm:"size:50;not null" json:"first_name"`
	LastName  string    `gorm:"size:50;not null" json:"last_name"`
	Email     string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	Phone     string    `gorm:"size:32" json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Submissions []Submission `gorm:"foreignKey:UserID" json:"submissions,omitempty"`
}

type Submission struct {
	ID               string    `gorm:"primaryKey;size:20" json:"id"`
	UserID           string    `gorm:"size:20;index;not null" json:"user_id"`
	JobDescription   string    `gorm:"type:text;not null" json:"job_description"`
	Status           string    `gorm:"size:16;default:'PENDING'" json:"status"` // PENDING, PROCESSING, COMPLETED, FAILED, REJECTED
	GeneratedPDFPath string    `gorm:"size:512" json:"generated_pdf_path,omitempty"`
	UploadedFileName string    `gorm:"size:255" json:"uploaded_file_name,omitempty"`
	UploadedFilePath string    `gorm:"size:512" json:"uploaded_file_path,omitempty"`
	UploadedFileSize int64     `json:"uploaded_file_size,omitempty"`
	UploadedFileMime string    `gorm:"size:128" json:"uploaded_file_mime,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// HasUpload reports whether a file was attached to the submission.
func (s *Submission) HasUpload() bool {
	return s.UploadedFilePath != ""
}
