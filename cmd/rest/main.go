package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-writing-assistant/internal/bootstrap"
	"ai-writing-assistant/internal/config"
	"ai-writing-assistant/internal/server"
	"ai-writing-assistant/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing)
	defer shutdownTracer(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("[FATAL] Failed to bootstrap assistant: %v", err)
	}
	defer container.Close()

	// 4. Start Background Services
	if err := container.ActivityConsumer.Consume(ctx); err != nil {
		log.Printf("Background Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
