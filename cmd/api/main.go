//	@title			FileDrop API
//	@version		1.0
//	@description	Container and file management on S3-compatible object storage.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/filedrop/service/internal/config"
	"github.com/filedrop/service/internal/container"
	"github.com/filedrop/service/internal/file"
	appMiddleware "github.com/filedrop/service/internal/middleware"
	"github.com/filedrop/service/internal/response"
	"github.com/filedrop/service/internal/storage"
	"github.com/filedrop/service/web"

	_ "github.com/filedrop/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StoragePublicBase,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: storage → service → handler
	containerSvc := container.NewService(store)
	containerHandler := container.NewHandler(containerSvc)

	fileSvc := file.NewService(store, cfg.MaxUploadBytes)
	fileHandler := file.NewHandler(fileSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// API
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handleHealth)

		r.Route("/containers", func(r chi.Router) {
			r.Get("/", containerHandler.List)
			r.Post("/", containerHandler.Create)
			r.Get("/{container}/files", fileHandler.List)
			r.Delete("/{container}/files/{filename}", fileHandler.Delete)
		})

		r.Post("/upload/{container}", fileHandler.Upload)
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Embedded single-page UI
	r.Handle("/*", web.Handler())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
		// generous read/write timeouts to accommodate large uploads
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Liveness probe. Always succeeds.
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
