package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LeaderboardEntry is the minimal data the leaderboard needs per user.
type LeaderboardEntry struct {
	Name             string `json:"name"`
	AvatarURL        string `json:"avatarUrl,omitempty"`
	Points           int    `json:"points"`
	Rank             string `json:"rank"`
	ReportsSubmitted int    `json:"reportsSubmitted"`
}

// GetLeaderboard returns all users sorted by points descending.
func GetLeaderboard(ctx *gin.Context) {
	users := civicStore.AllUsers()

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, LeaderboardEntry{
			Name:             user.Name,
			AvatarURL:        user.AvatarURL,
			Points:           user.Stats.Points,
			Rank:             user.Stats.Rank,
			ReportsSubmitted: user.Stats.ReportsSubmitted,
		})
	}

	ctx.JSON(http.StatusOK, entries)
}
