package models

// Severity levels assigned by the image classifier.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Report status lifecycle. Transitions are a moderator concern; this service
// only ever creates reports in StatusPending.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"
)

// CivicIssueData is the classification result for a report, produced by the
// Gemini classifier. Immutable once attached to a report.
type CivicIssueData struct {
	IssueType               string   `json:"issueType"`
	Severity                Severity `json:"severity"`
	Department              string   `json:"department"`
	Description             string   `json:"description"`
	ComplaintTitle          string   `json:"complaintTitle"`
	ComplaintBody           string   `json:"complaintBody"`
	EstimatedResolutionDays int      `json:"estimatedResolutionDays"`
}

// Coordinates captured at submission time.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ReportSubmission is a single civic-issue report. UserID, UserName and
// UserAvatar are snapshots of the submitter at submission time; later profile
// edits do not rewrite history. UserID holds the submitter's emailOrPhone
// store key.
type ReportSubmission struct {
	ID          string         `json:"id"`
	UserID      string         `json:"userId"`
	UserName    string         `json:"userName"`
	UserAvatar  string         `json:"userAvatar,omitempty"`
	Timestamp   string         `json:"timestamp"`
	Data        CivicIssueData `json:"data"`
	Image       string         `json:"image"`
	Location    string         `json:"location"`
	Coordinates *Coordinates   `json:"coordinates,omitempty"`
	Status      string         `json:"status"`
	Upvotes     int            `json:"upvotes"`
	IsUpvoted   bool           `json:"isUpvoted,omitempty"`
}
