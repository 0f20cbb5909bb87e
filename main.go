package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/votecast/catalog"
	"github.com/danielhkuo/votecast/cliparse"
	"github.com/danielhkuo/votecast/db"
	"github.com/danielhkuo/votecast/lifecycle"
	"github.com/danielhkuo/votecast/middleware"
	"github.com/danielhkuo/votecast/notify"
	"github.com/danielhkuo/votecast/router"
	"github.com/danielhkuo/votecast/store"
)

func main() {
	// Load .env if present; real env always wins
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Candidate catalog
	cat, err := catalog.Load(cfg.CandidatesFile)
	if err != nil {
		slog.Error("candidate catalog load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Candidate catalog loaded", "candidates", len(cat.List()))

	// Wire the core: store → lifecycle manager → broadcaster
	voteStore := store.New(dbConn)
	broadcaster := notify.NewBroadcaster()
	manager := lifecycle.NewManager(voteStore, broadcaster, cat, cfg.ReceiptRequired)

	// Create router
	mux := router.NewRouter(manager, voteStore, broadcaster, cat, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "receipt_required", cfg.ReceiptRequired)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
