package models

import "time"

// FeedEvent is broadcast over the websocket feed when a report is accepted.
type FeedEvent struct {
	Type      string    `json:"type"` // "report_submitted"
	ReportID  string    `json:"reportId"`
	UserName  string    `json:"userName"`
	IssueType string    `json:"issueType"`
	Points    int       `json:"points,omitempty"`
	NewScore  int       `json:"newScore,omitempty"`
	NewRank   string    `json:"newRank,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
