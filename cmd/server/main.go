package main

import (
	"log"
	"strconv"

	"civiclens/config"
	"civiclens/controllers"
	"civiclens/db"
	"civiclens/middlewares"
	"civiclens/routes"
	"civiclens/services"
	"civiclens/store"
	"civiclens/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := services.InitClassifierService(cfg); err != nil {
		log.Fatalf("Failed to init classifier: %v", err)
	}

	kv, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}

	civicStore := store.New(kv)
	controllers.Init(civicStore)

	// Force the first load so the seed users are persisted before traffic
	civicStore.LoadUsers()

	router := setupRouter(cfg, civicStore)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func openStorage(cfg *config.Config) (db.KV, error) {
	switch cfg.Storage.Backend {
	case "mongo":
		kv, err := db.ConnectMongo(cfg.Database.URI)
		if err != nil {
			return nil, err
		}
		log.Println("Connected to MongoDB")
		return kv, nil
	case "memory":
		return db.NewMemory(), nil
	default:
		return db.NewFile(cfg.Storage.Path)
	}
}

func setupRouter(cfg *config.Config, civicStore *store.Store) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	allowOrigins := cfg.Cors.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.GET("/badges", routes.GetBadgesRouteHandler)

	// Session-protected routes
	auth := router.Group("/")
	auth.Use(middlewares.SessionRequired(civicStore))
	{
		auth.GET("/session", routes.GetSessionRouteHandler)
		auth.POST("/logout", routes.LogoutRouteHandler)

		auth.GET("/user/fetchprofile", routes.GetProfileRouteHandler)
		auth.PUT("/user/updateprofile", routes.UpdateProfileRouteHandler)
		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)

		auth.GET("/reports", routes.GetReportsRouteHandler)
		auth.POST("/reports/analyze", routes.AnalyzeIssueRouteHandler)
		auth.POST("/reports", routes.SubmitReportRouteHandler)

		// WebSocket feed endpoint
		auth.GET("/ws", websocket.FeedWebsocketHandler)
	}

	return router
}
