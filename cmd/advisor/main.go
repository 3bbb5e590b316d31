// Command advisor runs the terminal chat with Morgan Chen, a simulated
// financial advisor backed by a streaming completion API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"advisor-ai/internal/adapter/llm"
	"advisor-ai/internal/adapter/tui/chat"
	"advisor-ai/internal/infra/config"
	"advisor-ai/internal/infra/logger"
	"advisor-ai/internal/infra/tracer"
	"advisor-ai/internal/portfolio"
	"advisor-ai/internal/usecase"
)

func main() {
	configPath := flag.String("config", "advisor.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer closeLog()

	shutdownTracer, err := tracer.Setup(context.Background(), cfg.Tracer)
	if err != nil {
		return err
	}
	defer shutdownTracer(context.Background())

	client := llm.NewClient(cfg.Provider, log)
	breaker := llm.NewBreakerClient(client, cfg.Provider.Breaker, log)

	book := portfolio.NewBook(portfolio.DemoClients())
	session := usecase.New(breaker, book, cfg.Provider, log)

	log.Info("starting advisor",
		"model", cfg.Provider.Model,
		"clients", len(book.Clients()),
		"active", book.Active().ClientID,
	)

	model := chat.New(chat.ModelDeps{
		Session:   session,
		Logger:    log,
		ModelName: cfg.Provider.Model,
		Instant:   cfg.UI.StreamSpeed == "instant",
	})

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
