package digest

import (
	"context"
	"fmt"
	"time"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/repository"
)

const (
	certificateWindow    = 30 * 24 * time.Hour
	projectEndingWindow  = 7 * 24 * time.Hour
	projectUpdatedWindow = 7 * 24 * time.Hour
	weeklyReportProjects = 5
)

// Builder produces the digest section for one category. It returns a nil
// section when there is nothing to report.
type Builder interface {
	Category() domain.NotificationCategory
	Build(ctx context.Context, now time.Time) (*domain.DigestSection, error)
}

// NewBuilders returns one builder per digest category.
func NewBuilders(repos *repository.Repositories, loc *time.Location) map[domain.NotificationCategory]Builder {
	if loc == nil {
		loc = time.UTC
	}
	return map[domain.NotificationCategory]Builder{
		domain.CategoryCertificateExpiry: &certificateExpiryBuilder{docs: repos.Document, loc: loc},
		domain.CategoryProjectReminders:  &projectRemindersBuilder{projects: repos.Project, loc: loc},
		domain.CategoryProjectUpdates:    &projectUpdatesBuilder{projects: repos.Project, loc: loc},
		domain.CategoryWeeklyReports: &weeklyReportBuilder{
			gondolas: repos.Gondola,
			docs:     repos.Document,
			projects: repos.Project,
		},
	}
}

type certificateExpiryBuilder struct {
	docs repository.DocumentRepository
	loc  *time.Location
}

func (b *certificateExpiryBuilder) Category() domain.NotificationCategory {
	return domain.CategoryCertificateExpiry
}

func (b *certificateExpiryBuilder) Build(ctx context.Context, now time.Time) (*domain.DigestSection, error) {
	docs, err := b.docs.ListCertificatesExpiringBetween(ctx, now, now.Add(certificateWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring certificates: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	items := make([]string, 0, len(docs))
	for _, d := range docs {
		if d.Expiry == nil {
			continue
		}
		items = append(items, fmt.Sprintf("%s for %s expires on %s", d.Title, d.SerialOrUnknown(), formatDate(*d.Expiry, b.loc)))
	}
	return newSection(b.Category(), items, false), nil
}

type projectRemindersBuilder struct {
	projects repository.ProjectRepository
	loc      *time.Location
}

func (b *projectRemindersBuilder) Category() domain.NotificationCategory {
	return domain.CategoryProjectReminders
}

func (b *projectRemindersBuilder) Build(ctx context.Context, now time.Time) (*domain.DigestSection, error) {
	projects, err := b.projects.ListEndingBetween(ctx, now, now.Add(projectEndingWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to list projects ending soon: %w", err)
	}

	items := make([]string, 0, len(projects))
	for _, p := range projects {
		if p.EndDate == nil {
			continue
		}
		items = append(items, fmt.Sprintf("Project %s at %s is ending on %s", p.DisplayName(), p.SiteName, formatDate(*p.EndDate, b.loc)))
	}
	return newSection(b.Category(), items, false), nil
}

type projectUpdatesBuilder struct {
	projects repository.ProjectRepository
	loc      *time.Location
}

func (b *projectUpdatesBuilder) Category() domain.NotificationCategory {
	return domain.CategoryProjectUpdates
}

func (b *projectUpdatesBuilder) Build(ctx context.Context, now time.Time) (*domain.DigestSection, error) {
	projects, err := b.projects.ListUpdatedSince(ctx, now.Add(-projectUpdatedWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to list recently updated projects: %w", err)
	}

	items := make([]string, 0, len(projects))
	for _, p := range projects {
		items = append(items, fmt.Sprintf("Project %s was updated on %s (Current status: %s)", p.DisplayName(), formatTimestamp(p.UpdatedAt, b.loc), p.Status))
	}
	return newSection(b.Category(), items, false), nil
}

type weeklyReportBuilder struct {
	gondolas repository.GondolaRepository
	docs     repository.DocumentRepository
	projects repository.ProjectRepository
}

func (b *weeklyReportBuilder) Category() domain.NotificationCategory {
	return domain.CategoryWeeklyReports
}

func (b *weeklyReportBuilder) Build(ctx context.Context, now time.Time) (*domain.DigestSection, error) {
	gondolas, err := b.gondolas.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gondolas: %w", err)
	}

	docs, err := b.docs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	projects, err := b.projects.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if len(gondolas) == 0 && len(docs) == 0 && len(projects) == 0 {
		return nil, nil
	}

	return WeeklyReportSection(gondolas, docs, projects), nil
}

// WeeklyReportSection summarises fleet, document and project counts and lists
// the first few projects.
func WeeklyReportSection(gondolas []domain.Gondola, docs []domain.Document, projects []domain.Project) *domain.DigestSection {
	summary := domain.SummarizeFleet(gondolas, docs, projects)

	limit := min(len(projects), weeklyReportProjects)
	items := make([]string, 0, limit)
	for _, p := range projects[:limit] {
		items = append(items, fmt.Sprintf("%s (%s) - Status: %s", p.Client, p.SiteName, p.Status))
	}

	return &domain.DigestSection{
		Category: domain.CategoryWeeklyReports,
		Title:    domain.CategoryWeeklyReports.Title(),
		Lines: []string{
			fmt.Sprintf("Active Gondolas: %d", summary.ActiveGondolas),
			fmt.Sprintf("Expired Certificates: %d", summary.ExpiredCertificates),
			fmt.Sprintf("Pending Inspections: %d", summary.PendingInspections),
			fmt.Sprintf("Total Projects: %d", summary.TotalProjects),
		},
		Items:   items,
		Ordered: true,
	}
}

func newSection(category domain.NotificationCategory, items []string, ordered bool) *domain.DigestSection {
	if len(items) == 0 {
		return nil
	}
	return &domain.DigestSection{
		Category: category,
		Title:    category.Title(),
		Items:    items,
		Ordered:  ordered,
	}
}
