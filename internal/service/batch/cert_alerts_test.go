package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gondola-rental/internal/domain"
	"gondola-rental/internal/mocks"
	"gondola-rental/internal/service/batch"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestShouldSendForFrequency(t *testing.T) {
	monday := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	firstOfMonth := time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency domain.AlertFrequency
		day       time.Time
		want      bool
	}{
		{"daily on tuesday", domain.FrequencyDaily, tuesday, true},
		{"weekly on monday", domain.FrequencyWeekly, monday, true},
		{"weekly on tuesday", domain.FrequencyWeekly, tuesday, false},
		{"monthly on the first", domain.FrequencyMonthly, firstOfMonth, true},
		{"monthly on the second", domain.FrequencyMonthly, firstOfMonth.AddDate(0, 0, 1), false},
		{"unknown frequency", domain.AlertFrequency("hourly"), monday, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, batch.ShouldSendForFrequency(tt.frequency, tt.day))
		})
	}
}

func TestExpiringDocuments(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	docs := []domain.Document{
		{Title: "in range", Expiry: timePtr(now.AddDate(0, 0, 10))},
		{Title: "past", Expiry: timePtr(now.AddDate(0, 0, -1))},
		{Title: "too far", Expiry: timePtr(now.AddDate(0, 0, 45))},
		{Title: "no expiry"},
	}

	got := batch.ExpiringDocuments(docs, now, 30)
	require.Len(t, got, 1)
	assert.Equal(t, "in range", got[0].Title)
	require.NotNil(t, got[0].DaysToExpiry)
	assert.Equal(t, 10, *got[0].DaysToExpiry)
}

type certFixture struct {
	subs      *mocks.SubscriptionRepository
	gondolas  *mocks.GondolaRepository
	documents *mocks.DocumentRepository
	mailer    *mocks.RecordingMailer
	runner    *batch.CertAlertRunner
}

func newCertFixture(now time.Time) *certFixture {
	f := &certFixture{
		subs:      new(mocks.SubscriptionRepository),
		gondolas:  new(mocks.GondolaRepository),
		documents: new(mocks.DocumentRepository),
		mailer:    &mocks.RecordingMailer{},
	}
	f.runner = batch.NewCertAlertRunner(f.subs, f.gondolas, f.documents, f.mailer, time.UTC, zerolog.Nop())
	f.runner.SetClock(func() time.Time { return now })
	return f
}

func TestCertAlertRunner_WeeklySubscriptionOnMonday(t *testing.T) {
	monday := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	f := newCertFixture(monday)

	gondolaID := uuid.New()
	sub := domain.CertAlertSubscription{ID: uuid.New(), GondolaID: gondolaID, Email: "site@example.com", Frequency: domain.FrequencyWeekly, Threshold: 7}
	f.subs.On("ListCertAlerts", mock.Anything).Return([]domain.CertAlertSubscription{sub}, nil)
	f.gondolas.On("GetByID", mock.Anything, gondolaID).Return(&domain.Gondola{ID: gondolaID, SerialNumber: "GM-042", Status: "deployed"}, nil)
	f.documents.On("ListByGondola", mock.Anything, gondolaID).Return([]domain.Document{
		{Title: "Load Test Certificate", Type: strPtr("certificate"), Expiry: timePtr(monday.AddDate(0, 0, 5))},
		{Title: "Insurance", Expiry: timePtr(monday.AddDate(0, 0, 20))},
	}, nil)

	report, err := f.runner.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, f.mailer.Count())
	sent := f.mailer.Sent[0]
	assert.Equal(t, "site@example.com", sent.To)
	assert.Contains(t, sent.Subject, "GM-042")
	assert.Contains(t, sent.HTML, "Load Test Certificate")
	assert.Contains(t, sent.HTML, "5 days")
	assert.NotContains(t, sent.HTML, "Insurance")
	assert.Equal(t, 1, report.EmailsSent)
}

func TestCertAlertRunner_WeeklySubscriptionSkippedMidweek(t *testing.T) {
	wednesday := time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC)
	f := newCertFixture(wednesday)

	sub := domain.CertAlertSubscription{ID: uuid.New(), GondolaID: uuid.New(), Email: "site@example.com", Frequency: domain.FrequencyWeekly, Threshold: 30}
	f.subs.On("ListCertAlerts", mock.Anything).Return([]domain.CertAlertSubscription{sub}, nil)

	report, err := f.runner.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, f.mailer.Count())
	assert.Equal(t, 1, report.Skipped)
	f.gondolas.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCertAlertRunner_NothingExpiringSendsNothing(t *testing.T) {
	now := time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC)
	f := newCertFixture(now)

	gondolaID := uuid.New()
	sub := domain.CertAlertSubscription{ID: uuid.New(), GondolaID: gondolaID, Email: "a@example.com", Frequency: domain.FrequencyDaily, Threshold: 7}
	f.subs.On("ListCertAlerts", mock.Anything).Return([]domain.CertAlertSubscription{sub}, nil)
	f.gondolas.On("GetByID", mock.Anything, gondolaID).Return(&domain.Gondola{ID: gondolaID, SerialNumber: "GM-1"}, nil)
	f.documents.On("ListByGondola", mock.Anything, gondolaID).Return([]domain.Document{
		{Title: "Certificate", Expiry: timePtr(now.AddDate(0, 0, 30))},
	}, nil)

	report, err := f.runner.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, f.mailer.Count())
	assert.Zero(t, report.EmailsSent)
}

func TestCertAlertRunner_SubscriptionFailureContinues(t *testing.T) {
	now := time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC)
	f := newCertFixture(now)

	missing, present := uuid.New(), uuid.New()
	f.subs.On("ListCertAlerts", mock.Anything).Return([]domain.CertAlertSubscription{
		{ID: uuid.New(), GondolaID: missing, Email: "a@example.com", Frequency: domain.FrequencyDaily, Threshold: 30},
		{ID: uuid.New(), GondolaID: present, Email: "b@example.com", Frequency: domain.FrequencyDaily, Threshold: 30},
	}, nil)
	f.gondolas.On("GetByID", mock.Anything, missing).Return(nil, errors.New("not found"))
	f.gondolas.On("GetByID", mock.Anything, present).Return(&domain.Gondola{ID: present, SerialNumber: "GM-2"}, nil)
	f.documents.On("ListByGondola", mock.Anything, present).Return([]domain.Document{
		{Title: "Certificate", Expiry: timePtr(now.AddDate(0, 0, 3))},
	}, nil)

	report, err := f.runner.Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, f.mailer.Count())
	assert.Equal(t, "b@example.com", f.mailer.Sent[0].To)
	assert.Equal(t, 1, report.QueryErrors)
	assert.Len(t, report.Errors, 1)
}

func TestCertAlertRunner_ListFailureIsFatal(t *testing.T) {
	f := newCertFixture(time.Now())
	f.subs.On("ListCertAlerts", mock.Anything).Return(nil, errors.New("db down"))

	_, err := f.runner.Run(context.Background())
	require.Error(t, err)
}
