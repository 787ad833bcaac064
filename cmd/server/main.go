package main

import (
	"context"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vncsmyrnk/polling-app/internal/adapters/handler/http"
	"github.com/vncsmyrnk/polling-app/internal/adapters/oauth/google"
	"github.com/vncsmyrnk/polling-app/internal/adapters/repository"
	"github.com/vncsmyrnk/polling-app/internal/config"
	"github.com/vncsmyrnk/polling-app/internal/core/services"
)

// @title       Polling API
// @version     1.0
// @description Create polls, vote once per poll and read live results.
// @BasePath    /
func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("server", os.Args[1:])
	if err != nil {
		return err
	}
	if err := cfg.RequireAuth(); err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := repository.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer repos.Close()

	pollService := services.NewPollService(repos.Polls, repos.Votes)
	voteService := services.NewVoteService(repos.Polls, repos.Votes)
	resultService := services.NewResultService(repos.Polls, repos.Votes)
	userService := services.NewUserService(repos.Users)
	authService := services.NewAuthService(repos.Users, repos.Auth, google.NewVerifier(), services.AuthConfig{
		JWTSecret:      cfg.JWTSecret,
		GoogleClientID: cfg.GoogleClientID,
	})

	handler := http.NewHandler(http.Handlers{
		Poll:   http.NewPollHandler(pollService),
		Vote:   http.NewVoteHandler(voteService),
		Result: http.NewResultHandler(resultService),
		Auth:   http.NewAuthHandler(authService, cfg.OAuthRedirectURL, cfg.CookieDomain, cfg.CookieSameSite),
		User:   http.NewUserHandler(userService),
		Health: http.NewHealthHandler(repos.Polls),
	}, http.NewAuthMiddleware(authService), cfg.CORSOrigins)

	server := &stdhttp.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
