package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ugchub/ugchub-backend/config"
	authsvc "github.com/ugchub/ugchub-backend/internal/auth/service"
	"github.com/ugchub/ugchub-backend/internal/bootstrap"
	"github.com/ugchub/ugchub-backend/internal/events"
	"github.com/ugchub/ugchub-backend/internal/logging"
	"github.com/ugchub/ugchub-backend/internal/projects/repository"
	projectssvc "github.com/ugchub/ugchub-backend/internal/projects/service"
)

const serviceName = "ugchub-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	logging.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var credentials authsvc.CredentialMatcher
	if cfg.Auth.LooseLogin {
		log.Println("auth: loose login enabled, any email/password is accepted")
		credentials = authsvc.LooseCredentials{}
	} else {
		table, err := authsvc.LoadCredentials(cfg.Auth.CredentialsFile)
		if err != nil {
			log.Fatalf("credentials: %v", err)
		}
		credentials = table
	}

	catalog, err := repository.LoadCatalog(cfg.Catalog.SeedFile)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	log.Printf("catalog: %d creators loaded", catalog.Len())

	hub := events.NewHub()

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()

		detach := events.NewRedisPublisher(rdb, cfg.Redis.ChannelPrefix).Attach(hub)
		defer detach()
		log.Printf("redis: publishing events to %s (prefix %q)", cfg.Redis.Addr, cfg.Redis.ChannelPrefix)
	}

	sessions := authsvc.NewSessionStore(credentials, hub)
	projects := projectssvc.NewProjectService(repository.NewProjectRepository(), catalog, hub)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		DefaultLang:    cfg.App.DefaultLang,
		Sessions:       sessions,
		Projects:       projects,
		Hub:            hub,
		Redis:          rdb,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Event streams end when the signal context is cancelled.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("%s %s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("shutting down")
	case err := <-errCh:
		log.Fatalf("server: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
