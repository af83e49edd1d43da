package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Maru1209/EulerQ-candidate-test/internals/app"
	"github.com/Maru1209/EulerQ-candidate-test/internals/configs"
	database "github.com/Maru1209/EulerQ-candidate-test/internals/databases"
)

func main() {
	cfg := configs.Load()

	// 🔌 DB connect + pool tuning
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	database.TunePool(db)

	srv := app.New(db, cfg)

	// 🔒 server-side timeouts
	srv.Server().ReadTimeout = 15 * time.Second
	srv.Server().WriteTimeout = 30 * time.Second
	srv.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := srv.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.ShutdownWithContext(ctx)

	database.Close(db)
}
