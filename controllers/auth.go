package controllers

import (
	"errors"
	"log"
	"net/http"

	"civiclens/models"
	"civiclens/store"
	"civiclens/structs"
	"civiclens/utils"

	"github.com/gin-gonic/gin"
)

// Login resolves the supplied key against the user table and opens a session.
// There is no password check; the key is the whole credential.
func Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	user, ok := civicStore.Login(request.EmailOrPhone)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := civicStore.SaveSession(user); err != nil {
		log.Printf("failed to save session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open session"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// SignUp registers a new profile with fresh stats and opens a session.
func SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	newUser := models.UserProfile{
		ID:           utils.GenerateUserID(),
		Name:         request.Name,
		EmailOrPhone: request.EmailOrPhone,
		Password:     request.Password,
		AvatarURL:    utils.AvatarURL(request.Name),
		Stats: models.UserStats{
			Points:           0,
			ReportsSubmitted: 0,
			CurrentStreak:    1,
			Rank:             store.RankNewCitizen,
			Badges:           []models.Badge{},
		},
	}

	registered, err := civicStore.Register(newUser)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			ctx.JSON(http.StatusConflict, gin.H{"error": "User exists"})
			return
		}
		log.Printf("failed to register user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		return
	}

	if err := civicStore.SaveSession(registered); err != nil {
		log.Printf("failed to save session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open session"})
		return
	}

	ctx.JSON(http.StatusOK, registered)
}

// GetSession returns the currently authenticated user.
func GetSession(ctx *gin.Context) {
	user, ok := civicStore.Session()
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Logout destroys the session record and nothing else.
func Logout(ctx *gin.Context) {
	if err := civicStore.Logout(); err != nil {
		log.Printf("failed to clear session: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
