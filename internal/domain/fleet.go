package domain

const (
	expiredStatusFragment     = "expire"
	pendingInspectionFragment = "pending inspection"
)

// FleetSummary holds the headline counts shown in the weekly report and on
// the ops dashboard.
type FleetSummary struct {
	ActiveGondolas      int `json:"active_gondolas"`
	ExpiredCertificates int `json:"expired_certificates"`
	PendingInspections  int `json:"pending_inspections"`
	TotalProjects       int `json:"total_projects"`
}

func SummarizeFleet(gondolas []Gondola, docs []Document, projects []Project) FleetSummary {
	summary := FleetSummary{TotalProjects: len(projects)}
	for _, g := range gondolas {
		if g.IsDeployed() {
			summary.ActiveGondolas++
		}
	}
	for _, d := range docs {
		if d.StatusContains(expiredStatusFragment) {
			summary.ExpiredCertificates++
		}
		if d.StatusContains(pendingInspectionFragment) {
			summary.PendingInspections++
		}
	}
	return summary
}
