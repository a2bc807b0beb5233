// internal/pdf/renderer.go

// Package pdf renders a submission into the fixed-layout application
// document. The layout is declarative: a title header, personal and contact
// sections, the verbatim job description and an optional resume listing.
// Page breaks are left to the library.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"jobapp-back/internal/apperrors"
	"jobapp-back/internal/models"
)

const documentTitle = "Job Application"

// FileDescriptor describes one attached file for the resume section.
type FileDescriptor struct {
	OriginalName string
	Size         int64
}

type Renderer struct {
	// Compress toggles content-stream compression. Off, the text is
	// inspectable in the raw output.
	Compress bool

	// now is swappable for deterministic output in tests
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{Compress: true, now: time.Now}
}

// Render produces the PDF bytes for a submission. The job description is
// emitted verbatim; no re-flowing or summarizing happens here.
func (r *Renderer) Render(sub *models.Submission, user *models.User, files []FileDescriptor) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(documentTitle, false)
	doc.SetCompression(r.Compress)
	doc.AliasNbPages("")
	doc.SetAutoPageBreak(true, 20)

	generated := r.now()
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(95, 10, fmt.Sprintf("Generated on %s", generated.Format("2006-01-02 15:04:05")), "", 0, "L", false, 0, "")
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "R", false, 0, "")
	})

	doc.AddPage()

	// Header
	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 12, documentTitle, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(100, 100, 100)
	doc.CellFormat(0, 6, fmt.Sprintf("Submitted on %s", sub.CreatedAt.Format("January 2, 2006")), "", 1, "C", false, 0, "")
	doc.Ln(4)

	sectionHeader(doc, "PERSONAL INFORMATION")
	labeledLine(doc, "First Name", user.FirstName)
	labeledLine(doc, "Last Name", user.LastName)
	doc.Ln(3)

	sectionHeader(doc, "CONTACT INFORMATION")
	labeledLine(doc, "Email", user.Email)
	labeledLine(doc, "Phone", orNA(user.Phone))
	doc.Ln(3)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 6, "Position Applied For: As described below", "", 1, "L", false, 0, "")
	doc.Ln(2)

	sectionHeader(doc, "JOB DESCRIPTION")
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, 5, sub.JobDescription, "", "J", false)
	doc.Ln(3)

	if len(files) > 0 {
		sectionHeader(doc, "RESUME")
		for _, f := range files {
			labeledLine(doc, "File", f.OriginalName)
			labeledLine(doc, "Size", fmt.Sprintf("%.1f MB", float64(f.Size)/(1<<20)))
			labeledLine(doc, "Status", "Successfully Uploaded")
		}
	}

	if doc.Err() {
		return nil, apperrors.PDFGeneration(doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, apperrors.PDFGeneration(err)
	}
	return buf.Bytes(), nil
}

func sectionHeader(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.SetTextColor(30, 60, 120)
	doc.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	doc.Ln(1)
}

func labeledLine(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(35, 6, label+":", "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
