package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/bhavesh0907/organization-management-service-backend/config"
	"github.com/bhavesh0907/organization-management-service-backend/database"
	"github.com/bhavesh0907/organization-management-service-backend/handlers"
	"github.com/bhavesh0907/organization-management-service-backend/middleware"
	"github.com/bhavesh0907/organization-management-service-backend/routes"
	"github.com/bhavesh0907/organization-management-service-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it")
	}

	config.LoadConfig()

	ctx := context.Background()

	store, err := database.Connect(ctx, config.MongoURI, config.MongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	orgService := services.NewOrgService(store)
	authService := services.NewAuthService(store)

	healthHandler := handlers.NewHealthHandler(store)
	authHandler := handlers.NewAuthHandler(authService)
	orgHandler := handlers.NewOrgHandler(orgService)

	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)
	router.Use(middleware.CorsMiddleware)

	routes.RegisterRoutes(router, healthHandler, authHandler, orgHandler, middleware.Auth(authService))

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Organization Management Service running on http://localhost:%s", config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced shutdown: %v", err)
	}

	store.Close(context.Background())
	log.Println("Server stopped gracefully")
}
