package structs

import "civiclens/models"

type AnalyzeRequest struct {
	Image    string `json:"image" binding:"required"` // base64, no data-URL prefix
	Location string `json:"location"`
}

type SubmitReportRequest struct {
	Data        models.CivicIssueData `json:"data" binding:"required"`
	Image       string                `json:"image" binding:"required"`
	Location    string                `json:"location"`
	Coordinates *models.Coordinates   `json:"coordinates"`
}
