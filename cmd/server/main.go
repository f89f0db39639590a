package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	personhandler "kinship/internal/person/handler"
	"kinship/internal/person/policy"
	"kinship/internal/person/service"
	"kinship/internal/person/store"
	"kinship/internal/platform/config"
	"kinship/internal/platform/httpserver"
	"kinship/internal/platform/logger"
	"kinship/internal/platform/metrics"
	httptransport "kinship/internal/transport/http"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal person packages.
func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// Policy resolution failures are fatal: the process must not start with
	// an unresolved axis.
	partnerPolicy, err := policy.NewPartnerPolicy(cfg.Policies.Partner)
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}
	childCountPolicy, err := policy.NewChildCountPolicy(cfg.Policies.ChildCount)
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}
	agePolicy, err := policy.NewAgePolicy(cfg.Policies.Age)
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}
	cleanupPolicy, err := policy.NewCleanupPolicy(cfg.Policies.Cleanup)
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	personStore := store.New()
	matcher := service.NewMatcher(personStore, partnerPolicy, childCountPolicy, agePolicy, m, time.Now)
	persons := service.New(personStore, matcher, cleanupPolicy, log, m)
	handler := personhandler.New(persons, log)
	router := httptransport.NewRouter(handler, log, m, prometheus.DefaultGatherer)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting kinship server",
		"addr", cfg.Addr,
		"partner_policy", cfg.Policies.Partner,
		"childcount_policy", cfg.Policies.ChildCount,
		"age_policy", cfg.Policies.Age,
		"cleanup_policy", cfg.Policies.Cleanup,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
