package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ypremchand/Equipment-Management-sub000/cmd"
	"github.com/ypremchand/Equipment-Management-sub000/internal/core/container"
	"github.com/ypremchand/Equipment-Management-sub000/internal/core/logger"
	"github.com/ypremchand/Equipment-Management-sub000/internal/core/routes"
	"github.com/ypremchand/Equipment-Management-sub000/internal/database"
	"github.com/ypremchand/Equipment-Management-sub000/internal/middleware"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	appLogger := logger.NewLogger()
	defer func() { _ = appLogger.Sync() }()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		appLogger.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		appLogger.Fatal("unable to connect to the database: " + err.Error())
	}
	defer db.Close()

	appLogger.Info("Connected to the database successfully")

	appContainer := container.NewAppContainer(db, appLogger)

	router := gin.Default()
	router.Use(middleware.RecoveryMiddleware(appLogger))
	router.Use(middleware.TimeoutMiddleware(30 * time.Second))

	routes.RegisterUtilityRoutes(router)
	routes.RegisterPublicRoutes(router, appContainer)
	routes.RegisterProtectedRoutes(router, appContainer)

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		panic(err)
	}
}
