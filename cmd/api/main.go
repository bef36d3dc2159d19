//	@title			FilePress API
//	@version		1.0
//	@description	Upload a PDF, image, or video and get back a compressed rendition for one-time download.
//
//	@host		localhost:3000
//	@BasePath	/

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

	"github.com/filepress/service/internal/compress"
	"github.com/filepress/service/internal/config"
	"github.com/filepress/service/internal/converter"
	"github.com/filepress/service/internal/download"
	appMiddleware "github.com/filepress/service/internal/middleware"
	"github.com/filepress/service/internal/storage"
	"github.com/filepress/service/internal/worker"

	_ "github.com/filepress/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	incoming, err := storage.NewArea(cfg.UploadDir)
	if err != nil {
		log.Fatalf("incoming area init failed: %v", err)
	}
	processed, err := storage.NewArea(cfg.ProcessedDir)
	if err != nil {
		log.Fatalf("processed area init failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(cfg.ConvertWorkers)
	pool.Start(ctx)

	converters := map[converter.Kind]converter.Converter{
		converter.KindPDF:   converter.NewPDFConverter(),
		converter.KindImage: converter.NewImageConverter(),
		converter.KindVideo: converter.NewVideoConverter(cfg.FFmpegPath),
	}

	// Wire dependencies: storage → service → handler
	compressSvc := compress.NewService(incoming, processed, pool, converters, cfg.MaxUploadMB)
	compressHandler := compress.NewHandler(compressSvc)
	downloadHandler := download.NewHandler(processed)

	sweeper := storage.NewSweeper(cfg.ArtifactTTL, cfg.SweepInterval, incoming, processed)
	sweeper.Start()

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:3000/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/api/compress-pdf", compressHandler.CompressPDF)
	r.Post("/api/compress-image", compressHandler.CompressImage)
	r.Post("/api/compress-video", compressHandler.CompressVideo)
	r.Get("/download", downloadHandler.Get)

	// Static frontend at the root path.
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	// No read/write timeouts: large uploads and video transcodes run well
	// past any sensible fixed deadline.
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		IdleTimeout: 60 * time.Second,
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	sweeper.Stop()
	cancel()
	pool.Wait()

	log.Println("server stopped")
}
