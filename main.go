package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-kdms/geometry"
	"go-kdms/kdms"
	"go-kdms/overlay"
	"go-kdms/poller"
	"go-kdms/routes"
	ws "go-kdms/websocket"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	apiURL := os.Getenv("KDMS_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}
	fmt.Println("KDMS_API_URL: ", apiURL)

	boundaryFile := os.Getenv("GEOJSON_FILE")
	if boundaryFile == "" {
		boundaryFile = "kenya-counties.geojson"
	}

	// Load county boundaries once; they are static for the session.
	counties, err := geometry.LoadCounties(boundaryFile)
	if err != nil {
		log.Fatalf("Failed to load county boundaries: %v", err)
	}

	client := kdms.NewClient(apiURL)

	store := overlay.NewStore(counties, client.ResolveDisaster)
	if d := envDuration("EDIT_TIMEOUT"); d > 0 {
		store.SetEditTimeout(d)
	}

	// WebSocket hub pushes every accepted rebuild to subscribers.
	hub := ws.NewHub()
	go hub.Run()
	store.SetOnChange(hub.BroadcastOverlay)
	store.SetOnEditFailed(hub.BroadcastEditFailure)

	p := poller.New(client, store, envDuration("DISASTER_POLL_INTERVAL"), envDuration("RISK_POLL_INTERVAL"))
	if err := p.Start(); err != nil {
		log.Fatalf("Failed to start poller: %v", err)
	}

	// OpenAI client for situation briefs, optional.
	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
		openaiClient = openai.NewClient(apiKey)
	}

	r := routes.SetupRouter(store, p, client, hub, openaiClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Stop the poller and close the store before exit so no timer keeps
	// writing into a torn-down overlay.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		p.Stop()
		store.Close()
		os.Exit(0)
	}()

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// envDuration parses a duration env var ("45s", "2m"); zero means unset or
// invalid and lets the caller fall back to its default.
func envDuration(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", key, raw, err)
		return 0
	}
	return d
}
