package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Kreemchek/unitka20/internal/database"
	"github.com/Kreemchek/unitka20/internal/handlers"
	"github.com/Kreemchek/unitka20/internal/sources"
	"github.com/Kreemchek/unitka20/internal/telegram"
)

//go:embed web/*
var webFS embed.FS

func main() {
	// Command line flags
	port := flag.String("port", "8080", "Server port")
	dbPath := flag.String("db", "unitka.db", "SQLite database path")
	dataURL := flag.String("data-url", os.Getenv("DATA_URL"), "Base URL of the published catalog files (products.json, commission.xlsx)")
	flag.Parse()

	// Secrets come from the environment; .env is optional.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	tgClient := telegram.NewClient(telegram.Config{
		Token:       os.Getenv("BOT_TOKEN"),
		AdminChatID: os.Getenv("ADMIN_CHAT_ID"),
		ChannelID:   os.Getenv("CHANNEL_ID"),
	})

	sessionKey := os.Getenv("SESSION_KEY")
	if sessionKey == "" {
		sessionKey = "dev-only-insecure-session-key"
		log.Println("WARNING: SESSION_KEY not set - using an insecure development key")
	}
	store := database.NewSessionStore(db, []byte(sessionKey))

	srcService := sources.NewService(db, *dataURL)
	h := handlers.NewHandler(db, srcService, tgClient, store)

	// The catalog loads in the background; the API serves immediately and
	// reports readiness via /api/health.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		h.SetCatalog(srcService.LoadCatalog(ctx))
	}()

	go func() {
		for range time.Tick(time.Hour) {
			if err := store.CleanupExpiredSessions(); err != nil {
				log.Printf("Session cleanup failed: %v", err)
			}
		}
	}()

	// Set up routes
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", h.HealthCheck)
	mux.HandleFunc("/api/calculate", h.Calculate)
	mux.HandleFunc("/api/example", h.GetExample)
	mux.HandleFunc("/api/session/last", h.GetLastInputs)
	mux.HandleFunc("/api/products", h.GetProducts)
	mux.HandleFunc("/api/products/search", h.SearchProducts)
	mux.HandleFunc("/api/products/add", h.AddProduct)
	mux.HandleFunc("/api/products/import", h.ImportProducts)
	mux.HandleFunc("/api/products/upload", h.UploadCatalog)
	mux.HandleFunc("/api/reload", h.ReloadCatalog)
	mux.HandleFunc("/api/export", h.ExportResults)
	mux.HandleFunc("/api/snapshots", h.GetSnapshots)
	mux.HandleFunc("/api/access", h.CheckAccess)
	mux.HandleFunc("/api/share", h.ShareResults)

	// Serve embedded static files
	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		log.Fatal(err)
	}
	mux.Handle("/", http.FileServer(http.FS(webContent)))

	addr := ":" + *port
	log.Printf("Starting WB unit economics calculator on http://localhost%s", addr)
	if !tgClient.IsConfigured() {
		log.Println("WARNING: BOT_TOKEN not set - sharing and notifications are disabled")
	}

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
