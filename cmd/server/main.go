package main

import (
	"context"
	"log"
	"net/http"

	"menedzer-dysku/internal/api"
	"menedzer-dysku/internal/config"
	"menedzer-dysku/internal/database"
	"menedzer-dysku/internal/storage"
	"menedzer-dysku/internal/websocket"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Nie można wczytać konfiguracji: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET nie jest ustawiony")
	}

	dbpool, err := pgxpool.New(context.Background(), cfg.DB.Source)
	if err != nil {
		log.Fatalf("Nie można połączyć się z bazą danych: %v", err)
	}
	defer dbpool.Close()

	if err := dbpool.Ping(context.Background()); err != nil {
		log.Fatalf("Nie można pingować bazy danych: %v", err)
	}
	log.Println("Pomyślnie połączono z bazą danych")

	blobs, err := storage.NewMinioBlobStore(
		cfg.S3.Endpoint,
		cfg.S3.AccessKey,
		cfg.S3.SecretKey,
		cfg.S3.Bucket,
		cfg.S3.UseSSL,
	)
	if err != nil {
		log.Fatalf("Nie można zainicjować klienta S3: %v", err)
	}
	log.Printf("Obrazy będą przechowywane w buckecie: %s", cfg.S3.Bucket)

	wsHub := websocket.NewHub()

	store := database.NewStore(dbpool, wsHub)
	server := api.NewServer(cfg, store, blobs, wsHub)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(api.MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Server.ClientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/health", server.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", server.ServeWsHandler)

	r.Post("/api/auth/register", server.RegisterHandler)
	r.Post("/api/auth/login", server.LoginHandler)

	r.Route("/api", func(r chi.Router) {
		r.Use(server.AuthMiddleware)
		r.Get("/auth/me", server.GetCurrentUserHandler)
		r.Get("/events", server.GetEventsHandler)

		r.Route("/folders", func(r chi.Router) {
			r.Post("/create-folder", server.CreateFolderHandler)
			r.Get("/", server.ListRootFoldersHandler)
			r.Get("/subfolders/{parentId}", server.ListSubfoldersHandler)
			r.Delete("/delete-folder/{parentId}", server.DeleteFolderHandler)
			r.Post("/upload-image/{folderId}", server.UploadImageHandler)
			r.Get("/images/{folderId}", server.ListImagesHandler)
			r.Delete("/delete-image/{imageId}", server.DeleteImageHandler)
			r.Get("/{folderId}", server.GetFolderHandler)
		})
	})

	log.Printf("Uruchamianie serwera na porcie :%s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}
