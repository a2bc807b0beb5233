// internal/service/application.go

// Package service orchestrates the submission lifecycle: validate the form,
// find or create the user, store the upload, create the submission row,
// render the PDF, store it and mark the submission COMPLETED.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"jobapp-back/internal/apperrors"
	"jobapp-back/internal/models"
	"jobapp-back/internal/pdf"
	"jobapp-back/internal/repository"
	"jobapp-back/internal/storage"
	"jobapp-back/internal/validation"
)

// Upload carries an attached file through the pipeline.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Result is returned by the processing operations.
type Result struct {
	SubmissionID   string `json:"submissionId"`
	PDFDownloadURL string `json:"pdfDownloadUrl"`
	Status         string `json:"status"`
}

// Download carries the PDF bytes for the download endpoint.
type Download struct {
	Data        []byte
	FileName    string
	ContentType string
}

// Application is the submission service. One instance is constructed at
// process start and shared by all handlers.
type Application struct {
	users     repository.Users
	subs      repository.Submissions
	store     storage.Store
	renderer  *pdf.Renderer
	log       *slog.Logger
	baseURL   string
	fileRules validation.FileRules
}

func NewApplication(users repository.Users, subs repository.Submissions, store storage.Store,
	renderer *pdf.Renderer, log *slog.Logger, baseURL string, fileRules validation.FileRules) *Application {
	return &Application{
		users:     users,
		subs:      subs,
		store:     store,
		renderer:  renderer,
		log:       log,
		baseURL:   strings.TrimRight(baseURL, "/"),
		fileRules: fileRules,
	}
}

// ProcessApplication runs the full pipeline. Validation failures happen
// before anything is persisted. If a step fails after the submission row
// exists, the row is marked FAILED best-effort and the original error is
// returned.
func (a *Application) ProcessApplication(ctx context.Context, in validation.FormInput, upload *Upload) (*Result, error) {
	form, fieldErrs := validation.ValidateForm(in)
	if len(fieldErrs) > 0 {
		return nil, apperrors.Validation("invalid form data", fieldErrs)
	}

	if upload != nil {
		if err := validation.ValidateFile(upload.FileName, int64(len(upload.Data)),
			upload.ContentType, upload.Data, a.fileRules); err != nil {
			return nil, err
		}
	}

	user, err := a.users.FindOrCreate(ctx, &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
	})
	if err != nil {
		return nil, err
	}

	// Stage the upload before a submission row exists; it moves under the
	// submission's own scope once the id is minted.
	var staged *storage.SavedFile
	if upload != nil {
		sf, err := a.store.SaveTemp(ctx, upload.Data, upload.FileName, upload.ContentType)
		if err != nil {
			return nil, err
		}
		staged = &sf
	}

	sub := &models.Submission{
		ID:             models.NewID(),
		UserID:         user.ID,
		JobDescription: form.JobDescription,
		Status:         models.StatusPending,
	}

	if upload != nil {
		saved, err := a.store.Save(ctx, upload.Data, upload.FileName, upload.ContentType, sub.ID)
		if err != nil {
			a.discard(ctx, staged.RelPath, "staged upload")
			return nil, err
		}
		a.discard(ctx, staged.RelPath, "staged upload")
		sub.UploadedFileName = upload.FileName
		sub.UploadedFilePath = saved.RelPath
		sub.UploadedFileSize = saved.Size
		sub.UploadedFileMime = upload.ContentType
	}

	if err := a.subs.Create(ctx, sub); err != nil {
		if sub.UploadedFilePath != "" {
			a.discard(ctx, sub.UploadedFilePath, "orphaned upload")
		}
		return nil, err
	}
	sub.User = *user
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}

	relPath, err := a.renderAndStore(ctx, sub, user)
	if err != nil {
		a.markFailed(ctx, sub.ID)
		return nil, err
	}

	if err := a.subs.UpdateStatus(ctx, sub.ID, models.StatusCompleted, relPath); err != nil {
		a.markFailed(ctx, sub.ID)
		return nil, err
	}

	a.log.Info("application processed", "submission_id", sub.ID, "user_id", user.ID)
	return &Result{
		SubmissionID:   sub.ID,
		PDFDownloadURL: a.downloadURL(sub.ID),
		Status:         models.StatusCompleted,
	}, nil
}

// GetSubmission fetches a submission with its owning user. No side effects.
func (a *Application) GetSubmission(ctx context.Context, id string) (*models.Submission, error) {
	return a.subs.FindByID(ctx, id)
}

// ListUserSubmissions returns one page of a user's submissions plus the
// total count.
func (a *Application) ListUserSubmissions(ctx context.Context, userID string, page repository.Page) ([]models.Submission, int64, error) {
	if _, err := a.users.FindByID(ctx, userID); err != nil {
		return nil, 0, err
	}
	return a.subs.FindByUserID(ctx, userID, page)
}

// ListByStatus returns one page of submissions in the given status.
func (a *Application) ListByStatus(ctx context.Context, status string, page repository.Page) ([]models.Submission, int64, error) {
	if !models.ValidStatus(status) {
		return nil, 0, apperrors.Validation("unknown status "+status, nil)
	}
	return a.subs.FindByStatus(ctx, status, page)
}

// DownloadPDF returns the generated PDF for a submission. A submission whose
// artifact is missing is transparently reprocessed first, so a download can
// regenerate content as a side effect.
func (a *Application) DownloadPDF(ctx context.Context, id string) (*Download, error) {
	sub, err := a.subs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if sub.GeneratedPDFPath == "" || sub.User.ID == "" {
		if _, err := a.Reprocess(ctx, id); err != nil {
			return nil, err
		}
		if sub, err = a.subs.FindByID(ctx, id); err != nil {
			return nil, err
		}
	}

	data, err := a.store.Get(ctx, sub.GeneratedPDFPath)
	if err != nil {
		if apperrors.KindOf(err) != apperrors.KindFSNotFound {
			return nil, err
		}
		// Artifact vanished from storage; regenerate once.
		if _, err := a.Reprocess(ctx, id); err != nil {
			return nil, err
		}
		if sub, err = a.subs.FindByID(ctx, id); err != nil {
			return nil, err
		}
		if data, err = a.store.Get(ctx, sub.GeneratedPDFPath); err != nil {
			return nil, err
		}
	}

	return &Download{
		Data:        data,
		FileName:    path.Base(sub.GeneratedPDFPath),
		ContentType: "application/pdf",
	}, nil
}

// Reprocess re-renders a submission's PDF: PROCESSING, then COMPLETED with
// a new path, or FAILED with the path untouched and the original error
// returned.
func (a *Application) Reprocess(ctx context.Context, id string) (*Result, error) {
	sub, err := a.subs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.User.ID == "" {
		user, err := a.users.FindByID(ctx, sub.UserID)
		if err != nil {
			return nil, err
		}
		sub.User = *user
	}

	if err := a.subs.UpdateStatus(ctx, sub.ID, models.StatusProcessing, ""); err != nil {
		return nil, err
	}

	relPath, err := a.renderAndStore(ctx, sub, &sub.User)
	if err != nil {
		a.markFailed(ctx, sub.ID)
		return nil, err
	}

	if err := a.subs.UpdateStatus(ctx, sub.ID, models.StatusCompleted, relPath); err != nil {
		a.markFailed(ctx, sub.ID)
		return nil, err
	}

	a.log.Info("submission reprocessed", "submission_id", sub.ID)
	return &Result{
		SubmissionID:   sub.ID,
		PDFDownloadURL: a.downloadURL(sub.ID),
		Status:         models.StatusCompleted,
	}, nil
}

// Delete removes the stored files best-effort, then deletes the submission
// row. Only the row deletion failure propagates.
func (a *Application) Delete(ctx context.Context, id string) error {
	sub, err := a.subs.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if sub.HasUpload() {
		if err := a.store.Delete(ctx, sub.UploadedFilePath); err != nil {
			a.log.Warn("failed to delete uploaded file", "submission_id", id, "path", sub.UploadedFilePath, "error", err)
		}
	}
	if sub.GeneratedPDFPath != "" {
		if err := a.store.Delete(ctx, sub.GeneratedPDFPath); err != nil {
			a.log.Warn("failed to delete generated PDF", "submission_id", id, "path", sub.GeneratedPDFPath, "error", err)
		}
	}

	return a.subs.Delete(ctx, id)
}

func (a *Application) renderAndStore(ctx context.Context, sub *models.Submission, user *models.User) (string, error) {
	var files []pdf.FileDescriptor
	if sub.HasUpload() {
		files = append(files, pdf.FileDescriptor{
			OriginalName: sub.UploadedFileName,
			Size:         sub.UploadedFileSize,
		})
	}

	data, err := a.renderer.Render(sub, user, files)
	if err != nil {
		return "", err
	}

	saved, err := a.store.SaveGenerated(ctx, data, pdfFileName(user, sub.ID))
	if err != nil {
		return "", err
	}
	return saved.RelPath, nil
}

// discard removes a stored file that is no longer needed. Failures are
// logged, never propagated.
func (a *Application) discard(ctx context.Context, relPath, what string) {
	if err := a.store.Delete(ctx, relPath); err != nil {
		a.log.Warn("failed to remove "+what, "path", relPath, "error", err)
	}
}

func (a *Application) markFailed(ctx context.Context, id string) {
	if err := a.subs.UpdateStatus(ctx, id, models.StatusFailed, ""); err != nil {
		a.log.Error("failed to mark submission FAILED", "submission_id", id, "error", err)
	}
}

func (a *Application) downloadURL(id string) string {
	return fmt.Sprintf("%s/api/submissions/%s/download", a.baseURL, id)
}

// pdfFileName builds application_<First>_<Last>_<YYYY-MM-DD>_<shortId>.pdf.
func pdfFileName(user *models.User, subID string) string {
	clean := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
	}
	return fmt.Sprintf("application_%s_%s_%s_%s.pdf",
		clean(user.FirstName), clean(user.LastName),
		time.Now().Format("2006-01-02"), subID[:8])
}
