package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AK1089/minecraftMapArt/internal/config"
	"github.com/AK1089/minecraftMapArt/internal/paste"
	"github.com/AK1089/minecraftMapArt/internal/profile"
	"github.com/AK1089/minecraftMapArt/internal/server"
	"github.com/AK1089/minecraftMapArt/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web front end",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides MAPART_ADDR)")
	serveCmd.Flags().String("env", ".env", "environment file to load if present")
}

func runServe(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env")
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	var rec store.Recorder = store.Nop{}
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		m, err := store.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		cancel()
		if err != nil {
			return err
		}
		rec = m
		slog.Info("conversion history enabled", "database", cfg.MongoDatabase)
	}

	srv := server.New(
		paste.New(cfg.PasteURL, cfg.Timeout),
		profile.New(cfg.ProfileURL, cfg.Timeout),
		server.Options{BodyLimit: cfg.BodyLimit, Store: rec},
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	}()

	err = srv.Listen(cfg.Addr)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if cerr := rec.Close(ctx); cerr != nil {
		slog.Warn("closing history store", "error", cerr)
	}
	return err
}
