package routes

import (
	"civiclens/controllers"

	"github.com/gin-gonic/gin"
)

func LoginRouteHandler(ctx *gin.Context) {
	controllers.Login(ctx)
}

func SignUpRouteHandler(ctx *gin.Context) {
	controllers.SignUp(ctx)
}

func LogoutRouteHandler(ctx *gin.Context) {
	controllers.Logout(ctx)
}

func GetSessionRouteHandler(ctx *gin.Context) {
	controllers.GetSession(ctx)
}
