// internal/pdf/renderer_test.go
package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobapp-back/internal/models"
)

func testSubmission() (*models.Submission, *models.User) {
	user := &models.User{
		ID:        "u1234567890abcdefghi",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
	sub := &models.Submission{
		ID:             "s1234567890abcdefghi",
		UserID:         user.ID,
		JobDescription: "Experienced software engineer with ten years building compilers and runtime systems.",
		Status:         models.StatusPending,
		CreatedAt:      time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
	return sub, user
}

// uncompressed renderer so the text is inspectable in the raw bytes
func testRenderer() *Renderer {
	r := NewRenderer()
	r.Compress = false
	return r
}

func TestRenderProducesPDF(t *testing.T) {
	sub, user := testSubmission()
	data, err := testRenderer().Render(sub, user, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must start with the PDF magic header")
}

func TestRenderContainsFields(t *testing.T) {
	sub, user := testSubmission()
	data, err := testRenderer().Render(sub, user, nil)
	require.NoError(t, err)

	for _, want := range []string{
		"Ada",
		"Lovelace",
		"ada@example.com",
		"Experienced software engineer with ten years building compilers and runtime",
		"PERSONAL INFORMATION",
		"CONTACT INFORMATION",
		"JOB DESCRIPTION",
	} {
		assert.Contains(t, string(data), want)
	}

	// no phone on the record renders the fallback
	assert.Contains(t, string(data), "N/A")
	// no file attached, no resume section
	assert.NotContains(t, string(data), "RESUME")
}

func TestRenderResumeSection(t *testing.T) {
	sub, user := testSubmission()
	sub.UploadedFileName = "resume.pdf"
	sub.UploadedFilePath = "uploads/s123/abc.pdf"
	sub.UploadedFileSize = 2 << 20

	data, err := testRenderer().Render(sub, user, []FileDescriptor{
		{OriginalName: "resume.pdf", Size: 2 << 20},
	})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "RESUME")
	assert.Contains(t, out, "resume.pdf")
	assert.Contains(t, out, "2.0 MB")
	assert.Contains(t, out, "Successfully Uploaded")
}

func TestRenderPhonePresent(t *testing.T) {
	sub, user := testSubmission()
	user.Phone = "+1 555 867 5309"
	data, err := testRenderer().Render(sub, user, nil)
	require.NoError(t, err)
	assert.Contains(t, string(data), "+1 555 867 5309")
}

func TestRenderLongDescriptionPaginates(t *testing.T) {
	sub, user := testSubmission()
	sub.JobDescription = ""
	for i := 0; i < 400; i++ {
		sub.JobDescription += "Designing and operating distributed build pipelines across heterogeneous fleets. "
	}

	data, err := testRenderer().Render(sub, user, nil)
	require.NoError(t, err)
	// footer totals are resolved, the alias must not leak into the output
	assert.NotContains(t, string(data), "{nb}")
	assert.Contains(t, string(data), "Page 1 of")
}
