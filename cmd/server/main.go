package main

import (
	"fmt"
	"log"

	"quizforge/internal/config"
	"quizforge/internal/handler"
	"quizforge/internal/router"
	"quizforge/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize services
	quizSvc := service.NewQuizService(cfg.Upload, cfg.Parse)

	// Initialize handlers
	quizH := handler.NewQuizHandler(quizSvc, cfg.Upload, cfg.Export)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, quizH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
