package digest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/mocks"
	"gondola-rental/internal/repository"
)

type builderFixture struct {
	gondolas *mocks.GondolaRepository
	projects *mocks.ProjectRepository
	docs     *mocks.DocumentRepository
	builders map[domain.NotificationCategory]Builder
}

func newBuilderFixture() *builderFixture {
	f := &builderFixture{
		gondolas: new(mocks.GondolaRepository),
		projects: new(mocks.ProjectRepository),
		docs:     new(mocks.DocumentRepository),
	}
	f.builders = NewBuilders(&repository.Repositories{
		Gondola:  f.gondolas,
		Project:  f.projects,
		Document: f.docs,
	}, time.UTC)
	return f
}

func strPtr(s string) *string { return &s }

func TestNewBuilders_CoversEveryCategory(t *testing.T) {
	f := newBuilderFixture()
	for _, c := range domain.DigestCategories {
		b, ok := f.builders[c]
		require.True(t, ok, "missing builder for %s", c)
		assert.Equal(t, c, b.Category())
	}
}

func TestCertificateExpiryBuilder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	f := newBuilderFixture()
	expiry := now.AddDate(0, 0, 10)

	t.Run("Lists certificates with gondola serial", func(t *testing.T) {
		f.docs.On("ListCertificatesExpiringBetween", ctx, now, now.Add(30*24*time.Hour)).Return([]domain.CertificateDocument{
			{Document: domain.Document{ID: uuid.New(), Title: "Load Test Certificate", Expiry: &expiry}, GondolaSerial: strPtr("GD-1001")},
			{Document: domain.Document{ID: uuid.New(), Title: "Electrical Certificate", Expiry: &expiry}},
		}, nil).Once()

		section, err := f.builders[domain.CategoryCertificateExpiry].Build(ctx, now)
		require.NoError(t, err)
		require.NotNil(t, section)

		assert.Equal(t, "Certificate Expiry Alerts", section.Title)
		assert.Equal(t, []string{
			"Load Test Certificate for GD-1001 expires on Mar 12, 2026",
			"Electrical Certificate for unknown gondola expires on Mar 12, 2026",
		}, section.Items)
	})

	t.Run("No rows yields no section", func(t *testing.T) {
		f.docs.On("ListCertificatesExpiringBetween", ctx, now, now.Add(30*24*time.Hour)).Return([]domain.CertificateDocument{}, nil).Once()

		section, err := f.builders[domain.CategoryCertificateExpiry].Build(ctx, now)
		require.NoError(t, err)
		assert.Nil(t, section)
	})

	t.Run("Query error", func(t *testing.T) {
		f.docs.On("ListCertificatesExpiringBetween", ctx, now, now.Add(30*24*time.Hour)).Return(nil, errors.New("timeout")).Once()

		section, err := f.builders[domain.CategoryCertificateExpiry].Build(ctx, now)
		assert.Error(t, err)
		assert.Nil(t, section)
	})
}

func TestProjectRemindersBuilder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	f := newBuilderFixture()
	end := now.AddDate(0, 0, 3)

	f.projects.On("ListEndingBetween", ctx, now, now.Add(7*24*time.Hour)).Return([]domain.Project{
		{Name: strPtr("Harbour Tower"), Client: "Acme", SiteName: "Pier 7", EndDate: &end},
		{Client: "Globex", SiteName: "Main St", EndDate: &end},
	}, nil).Once()

	section, err := f.builders[domain.CategoryProjectReminders].Build(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, section)

	assert.Equal(t, []string{
		"Project Harbour Tower at Pier 7 is ending on Mar 5, 2026",
		"Project Globex at Main St is ending on Mar 5, 2026",
	}, section.Items)
	f.projects.AssertExpectations(t)
}

func TestProjectUpdatesBuilder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	f := newBuilderFixture()

	f.projects.On("ListUpdatedSince", ctx, now.Add(-7*24*time.Hour)).Return([]domain.Project{
		{Name: strPtr("Harbour Tower"), Status: "active", UpdatedAt: now.Add(-2 * time.Hour)},
	}, nil).Once()

	section, err := f.builders[domain.CategoryProjectUpdates].Build(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, section)

	assert.Equal(t, []string{"Project Harbour Tower was updated on Mar 2, 2026 7:00 AM UTC (Current status: active)"}, section.Items)
}

func TestWeeklyReportBuilder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	t.Run("Counts and lists first five projects", func(t *testing.T) {
		f := newBuilderFixture()
		f.gondolas.On("ListAll", ctx).Return([]domain.Gondola{
			{Status: "deployed"}, {Status: "Deployed"}, {Status: "available"},
		}, nil).Once()
		f.docs.On("ListAll", ctx).Return([]domain.Document{
			{Status: strPtr("Expired")},
			{Status: strPtr("expires soon")},
			{Status: strPtr("Pending Inspection")},
			{Status: nil},
		}, nil).Once()

		var projects []domain.Project
		for i := 0; i < 7; i++ {
			projects = append(projects, domain.Project{Client: "Client", SiteName: "Site", Status: "active"})
		}
		f.projects.On("ListAll", ctx).Return(projects, nil).Once()

		section, err := f.builders[domain.CategoryWeeklyReports].Build(ctx, now)
		require.NoError(t, err)
		require.NotNil(t, section)

		assert.Equal(t, []string{
			"Active Gondolas: 2",
			"Expired Certificates: 2",
			"Pending Inspections: 1",
			"Total Projects: 7",
		}, section.Lines)
		assert.Len(t, section.Items, 5)
		assert.Equal(t, "Client (Site) - Status: active", section.Items[0])
		assert.True(t, section.Ordered)
	})

	t.Run("Empty fleet yields no section", func(t *testing.T) {
		f := newBuilderFixture()
		f.gondolas.On("ListAll", ctx).Return([]domain.Gondola{}, nil).Once()
		f.docs.On("ListAll", ctx).Return([]domain.Document{}, nil).Once()
		f.projects.On("ListAll", ctx).Return([]domain.Project{}, nil).Once()

		section, err := f.builders[domain.CategoryWeeklyReports].Build(ctx, now)
		require.NoError(t, err)
		assert.Nil(t, section)
	})

	t.Run("Gondola query error stops early", func(t *testing.T) {
		f := newBuilderFixture()
		f.gondolas.On("ListAll", ctx).Return(nil, errors.New("boom")).Once()

		_, err := f.builders[domain.CategoryWeeklyReports].Build(ctx, now)
		assert.Error(t, err)
		f.docs.AssertNotCalled(t, "ListAll", ctx)
	})
}
