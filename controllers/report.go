package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"civiclens/models"
	"civiclens/services"
	"civiclens/store"
	"civiclens/structs"
	"civiclens/utils"
	"civiclens/websocket"

	"github.com/gin-gonic/gin"
)

// AnalyzeIssue runs the image through the classifier and returns the drafted
// complaint. Nothing is persisted here; the client reviews the draft and
// submits it separately.
func AnalyzeIssue(ctx *gin.Context) {
	var request structs.AnalyzeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	data, err := services.AnalyzeCivicIssue(ctx.Request.Context(), request.Image, request.Location)
	if err != nil {
		if errors.Is(err, services.ErrClassifierFailure) {
			log.Printf("analysis failed: %v", err)
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "Analysis failed", "message": "Could not analyze the image, please retry"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// SubmitReport accepts a reviewed classification result and persists the
// report. The submitter snapshot comes from the session set by the
// middleware; the store's write path applies the point reward.
func SubmitReport(ctx *gin.Context) {
	var request structs.SubmitReportRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	sessionUser := ctx.MustGet("user").(models.UserProfile)

	report := models.ReportSubmission{
		ID:          utils.GenerateReportID(),
		UserID:      sessionUser.EmailOrPhone,
		UserName:    sessionUser.Name,
		UserAvatar:  sessionUser.AvatarURL,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Data:        request.Data,
		Image:       request.Image,
		Location:    request.Location,
		Coordinates: request.Coordinates,
		Status:      models.StatusPending,
		Upvotes:     0,
	}

	reports, updatedUser, err := civicStore.AddReport(report)
	if err != nil {
		log.Printf("failed to store report: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store report"})
		return
	}

	if updatedUser.ID != "" {
		websocket.BroadcastFeedEvent(models.FeedEvent{
			Type:      "report_submitted",
			ReportID:  report.ID,
			UserName:  report.UserName,
			IssueType: report.Data.IssueType,
			Points:    store.PointsPerReport,
			NewScore:  updatedUser.Stats.Points,
			NewRank:   updatedUser.Stats.Rank,
			Timestamp: time.Now(),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"report":  report,
		"user":    updatedUser,
		"reports": reports,
	})
}

// GetReports returns every report, most recent first.
func GetReports(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, civicStore.LoadReports())
}
