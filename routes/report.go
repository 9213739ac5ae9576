package routes

import (
	"civiclens/controllers"

	"github.com/gin-gonic/gin"
)

func AnalyzeIssueRouteHandler(ctx *gin.Context) {
	controllers.AnalyzeIssue(ctx)
}

func SubmitReportRouteHandler(ctx *gin.Context) {
	controllers.SubmitReport(ctx)
}

func GetReportsRouteHandler(ctx *gin.Context) {
	controllers.GetReports(ctx)
}
