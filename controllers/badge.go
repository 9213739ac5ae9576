package controllers

import (
	"net/http"

	"civiclens/store"

	"github.com/gin-gonic/gin"
)

// GetBadges returns the static badge catalog.
func GetBadges(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, store.Badges())
}
