package domain

import "time"

type JobName string

const (
	JobUserDigest JobName = "user-digest"
	JobCertAlerts JobName = "cert-alerts"
)

func (j JobName) IsValid() bool {
	return j == JobUserDigest || j == JobCertAlerts
}

// RunReport summarises one batch run.
type RunReport struct {
	Job          JobName   `json:"job"`
	StartedAt    time.Time `json:"started_at"`
	FinishedAt   time.Time `json:"finished_at"`
	Units        int       `json:"units"`
	Skipped      int       `json:"skipped"`
	EmailsSent   int       `json:"emails_sent"`
	SendFailures int       `json:"send_failures"`
	QueryErrors  int       `json:"query_errors"`
	Errors       []string  `json:"errors,omitempty"`
}

func (r *RunReport) AddError(err error) {
	r.Errors = append(r.Errors, err.Error())
}
