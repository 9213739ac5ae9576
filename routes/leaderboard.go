package routes

import (
	"civiclens/controllers"

	"github.com/gin-gonic/gin"
)

func GetLeaderboardRouteHandler(ctx *gin.Context) {
	controllers.GetLeaderboard(ctx)
}

func GetBadgesRouteHandler(ctx *gin.Context) {
	controllers.GetBadges(ctx)
}
