// internal/handlers/submissions.go
package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobapp-back/internal/apperrors"
	"jobapp-back/internal/models"
	"jobapp-back/internal/repository"
	"jobapp-back/internal/service"
	"jobapp-back/internal/validation"
)

type submissionRequest struct {
	FirstName      string `json:"firstName" form:"firstName"`
	LastName       string `json:"lastName" form:"lastName"`
	Email          string `json:"email" form:"email"`
	Phone          string `json:"phone" form:"phone"`
	JobDescription string `json:"jobDescription" form:"jobDescription"`
}

// CreateSubmission accepts a multipart form (with an optional file) or a
// JSON body and runs the full processing pipeline.
func CreateSubmission(app *service.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req submissionRequest
		var upload *service.Upload

		if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			if err := c.ShouldBind(&req); err != nil {
				respondError(c, apperrors.Validation("malformed form data", nil))
				return
			}
			fileHeader, err := c.FormFile("file")
			if err == nil {
				f, err := fileHeader.Open()
				if err != nil {
					respondError(c, apperrors.FileUpload("failed to read uploaded file"))
					return
				}
				data, err := io.ReadAll(f)
				f.Close()
				if err != nil {
					respondError(c, apperrors.FileUpload("failed to read uploaded file"))
					return
				}
				upload = &service.Upload{
					FileName:    fileHeader.Filename,
					ContentType: fileHeader.Header.Get("Content-Type"),
					Data:        data,
				}
			}
		} else {
			if err := c.ShouldBindJSON(&req); err != nil {
				respondError(c, apperrors.Validation("malformed request body", nil))
				return
			}
		}

		result, err := app.ProcessApplication(c.Request.Context(), validation.FormInput{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			Phone:          req.Phone,
			JobDescription: req.JobDescription,
		}, upload)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success":        true,
			"submissionId":   result.SubmissionID,
			"pdfDownloadUrl": result.PDFDownloadURL,
			"status":         result.Status,
		})
	}
}

func GetSubmission(app *service.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := submissionID(c)
		if !ok {
			return
		}
		sub, err := app.GetSubmission(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, sub)
	}
}

func DownloadSubmission(app *service.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := submissionID(c)
		if !ok {
			return
		}
		dl, err := app.DownloadPDF(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dl.FileName))
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Data(http.StatusOK, dl.ContentType, dl.Data)
	}
}

func ReprocessSubmission(app *service.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := submissionID(c)
		if !ok {
			return
		}
		result, err := app.Reprocess(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":        true,
			"submissionId":   result.SubmissionID,
			"pdfDownloadUrl": result.PDFDownloadURL,
			"status":         result.Status,
		})
	}
}

func DeleteSubmission(app *service.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := submissionID(c)
		if !ok {
			return
		}
		if err := app.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ListUserSubmissions serves one page of a user's submissions. Page zero or
// negative is rejected rather than clamped.
func ListUserSubmissions(app *service.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		if !models.ValidID(userID) {
			respondError(c, apperrors.Validation("malformed user id", nil))
			return
		}

		page := repository.Page{
			Number: 1,
			Size:   repository.DefaultPageSize,
			SortBy: c.DefaultQuery("sortBy", "createdAt"),
			Order:  c.DefaultQuery("order", "desc"),
		}
		if raw := c.Query("page"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				respondError(c, apperrors.Validation("page must be a positive integer", nil))
				return
			}
			page.Number = n
		}
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				respondError(c, apperrors.Validation("limit must be a positive integer", nil))
				return
			}
			page.Size = n
		}

		subs, total, err := app.ListUserSubmissions(c.Request.Context(), userID, page)
		if err != nil {
			respondError(c, err)
			return
		}

		norm := page.Normalize()
		c.JSON(http.StatusOK, gin.H{
			"items": subs,
			"total": total,
			"page":  norm.Number,
			"limit": norm.Size,
		})
	}
}

// ListSubmissions serves one page of submissions filtered by status.
func ListSubmissions(app *service.Application) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := strings.ToUpper(c.DefaultQuery("status", models.StatusPending))

		page := repository.Page{
			Number: 1,
			Size:   repository.DefaultPageSize,
			SortBy: c.DefaultQuery("sortBy", "createdAt"),
			Order:  c.DefaultQuery("order", "desc"),
		}
		if raw := c.Query("page"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				respondError(c, apperrors.Validation("page must be a positive integer", nil))
				return
			}
			page.Number = n
		}
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				respondError(c, apperrors.Validation("limit must be a positive integer", nil))
				return
			}
			page.Size = n
		}

		subs, total, err := app.ListByStatus(c.Request.Context(), status, page)
		if err != nil {
			respondError(c, err)
			return
		}

		norm := page.Normalize()
		c.JSON(http.StatusOK, gin.H{
			"items": subs,
			"total": total,
			"page":  norm.Number,
			"limit": norm.Size,
		})
	}
}

func submissionID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !models.ValidID(id) {
		respondError(c, apperrors.Validation("malformed submission id", nil))
		return "", false
	}
	return id, true
}
