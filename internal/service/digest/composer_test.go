package digest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gondola-rental/internal/domain"
)

func TestCompose_Empty(t *testing.T) {
	html, err := Compose(nil)
	assert.ErrorIs(t, err, ErrEmptyDigest)
	assert.Empty(t, html)

	_, err = Compose([]domain.DigestSection{})
	assert.ErrorIs(t, err, ErrEmptyDigest)
}

func TestCompose_PreservesOrder(t *testing.T) {
	sections := []domain.DigestSection{
		{Title: "Project Reminders", Items: []string{"Project Alpha at Pier 7 is ending on Mar 3, 2026"}},
		{Title: "Weekly Report", Lines: []string{"Total Projects: 1"}, Items: []string{"Acme (Pier 7) - Status: active"}, Ordered: true},
	}

	html, err := Compose(sections)
	require.NoError(t, err)

	first := strings.Index(html, "Project Reminders")
	second := strings.Index(html, "Weekly Report")
	assert.True(t, first >= 0 && second > first, "sections must appear in order")

	assert.Equal(t, 1, strings.Count(html, "<h1"))
	assert.Equal(t, 1, strings.Count(html, "<hr"))
	assert.Contains(t, html, DigestHeading)
	assert.Contains(t, html, "Total Projects: 1")
	assert.Contains(t, html, "<ol>")
	assert.Contains(t, html, "<ul>")
}

func TestCompose_EscapesContent(t *testing.T) {
	html, err := Compose([]domain.DigestSection{
		{Title: "Project Updates", Items: []string{`Project <script>alert(1)</script> was updated`}},
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestComposeCertAlert(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	expiry := now.AddDate(0, 0, 5)
	model := "ZLP630"
	typ := "Load Certificate"

	gondola := domain.Gondola{SerialNumber: "GD-1001", Model: &model, Status: "deployed"}
	docs := []domain.DocumentStatus{
		domain.NewDocumentStatus(domain.Document{Title: "Annual load test", Type: &typ, Expiry: &expiry}, now, 7),
	}

	subject, html, err := ComposeCertAlert(gondola, docs, 7, time.UTC)
	require.NoError(t, err)

	assert.Contains(t, subject, "GD-1001")
	assert.Contains(t, html, "Gondola GD-1001")
	assert.Contains(t, html, "ZLP630")
	assert.Contains(t, html, "Location:</strong> N/A")
	assert.Contains(t, html, "Annual load test (Load Certificate) expires on Mar 7, 2026 (5 days)")
	assert.Contains(t, html, "Expiring within 7 days")
}

func TestComposeCertAlert_NoDocuments(t *testing.T) {
	_, _, err := ComposeCertAlert(domain.Gondola{SerialNumber: "GD-1"}, nil, 7, time.UTC)
	assert.ErrorIs(t, err, ErrEmptyDigest)
}
