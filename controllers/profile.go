package controllers

import (
	"log"
	"net/http"

	"civiclens/models"
	"civiclens/structs"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the session user's stored profile.
func GetProfile(ctx *gin.Context) {
	sessionUser := ctx.MustGet("user").(models.UserProfile)

	user, ok := civicStore.Login(sessionUser.EmailOrPhone)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile edits the mutable identity fields of the session user. Stats
// are owned by the store's report path and cannot be edited here.
func UpdateProfile(ctx *gin.Context) {
	var request structs.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	sessionUser := ctx.MustGet("user").(models.UserProfile)

	user, ok := civicStore.Login(sessionUser.EmailOrPhone)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.AvatarURL != "" {
		user.AvatarURL = request.AvatarURL
	}

	if err := civicStore.UpdateProfile(user); err != nil {
		log.Printf("failed to update profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}
