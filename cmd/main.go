// Package main provides entry point for the contact assistant.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"contactbook/internal/config"
	"contactbook/internal/handler"
	"contactbook/internal/logger"
	"contactbook/internal/repl"
	"contactbook/internal/storage"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context, in io.Reader, out io.Writer) error {
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogPath, cfg.LogMaxSizeMB)
	defer func() { _ = log.Sync() }()
	log.Info("Starting contact assistant", zap.String("book", cfg.BookPath))

	store := storage.New(cfg.BookPath, log)
	book, err := store.Load()
	if err != nil {
		log.Error("loading address book failed", zap.Error(err))
		return fmt.Errorf("load address book: %w", err)
	}

	h := handler.New(log, book)
	if err := repl.New(log, h, book, store).Run(ctx, in, out); err != nil {
		return err
	}

	log.Info("Contact assistant stopped", zap.Int("contacts", book.Len()))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
