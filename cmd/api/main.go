package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/medidesk/frontdesk-api/internal/config"
	appointmentHandler "github.com/medidesk/frontdesk-api/internal/handler/appointment"
	directoryHandler "github.com/medidesk/frontdesk-api/internal/handler/directory"
	patientHandler "github.com/medidesk/frontdesk-api/internal/handler/patient"
	pharmacyHandler "github.com/medidesk/frontdesk-api/internal/handler/pharmacy"
	pricingHandler "github.com/medidesk/frontdesk-api/internal/handler/pricing"
	registrationHandler "github.com/medidesk/frontdesk-api/internal/handler/registration"
	wardHandler "github.com/medidesk/frontdesk-api/internal/handler/ward"
	"github.com/medidesk/frontdesk-api/internal/middleware"
	"github.com/medidesk/frontdesk-api/internal/router"
	appointmentService "github.com/medidesk/frontdesk-api/internal/service/appointment"
	directoryService "github.com/medidesk/frontdesk-api/internal/service/directory"
	patientService "github.com/medidesk/frontdesk-api/internal/service/patient"
	pharmacyService "github.com/medidesk/frontdesk-api/internal/service/pharmacy"
	pricingService "github.com/medidesk/frontdesk-api/internal/service/pricing"
	registrationService "github.com/medidesk/frontdesk-api/internal/service/registration"
	wardService "github.com/medidesk/frontdesk-api/internal/service/ward"
	"github.com/medidesk/frontdesk-api/internal/store"
	"github.com/medidesk/frontdesk-api/pkg/logger"
	"github.com/medidesk/frontdesk-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	// Open durable local storage and the domain store on top of it
	persister, err := store.NewSQLitePersister(cfg.Storage.Path, cfg.Storage.Namespace)
	if err != nil {
		log.Fatal(err, "failed to open storage")
	}
	defer persister.Close()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.NewMetrics(cfg.Metrics.Namespace)
	}

	domainStore, err := store.Open(context.Background(), persister, m)
	if err != nil {
		log.Fatal(err, "failed to open domain store")
	}

	// Services
	patientSvc := patientService.NewService(domainStore)
	appointmentSvc := appointmentService.NewService(domainStore)
	registrationSvc := registrationService.NewService(domainStore)
	pharmacySvc := pharmacyService.NewService(domainStore, m)
	pricingSvc := pricingService.NewService(domainStore)
	wardSvc := wardService.NewService(nil)
	directorySvc := directoryService.NewService(domainStore, nil)

	// Router
	routerCfg := router.Config{
		CORSConfig:  middleware.DefaultCORSConfig(),
		MetricsPath: cfg.Metrics.Path,
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		routerCfg.CORSConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}
	if cfg.RateLimit.Enabled {
		routerCfg.RateLimit = rate.Limit(cfg.RateLimit.RequestsPerSecond)
		routerCfg.RateBurst = cfg.RateLimit.Burst
	}
	if !cfg.Metrics.Enabled {
		routerCfg.MetricsPath = ""
	}

	r := router.NewRouter(m, routerCfg,
		patientHandler.NewHandler(patientSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		registrationHandler.NewHandler(registrationSvc),
		pharmacyHandler.NewHandler(pharmacySvc),
		pricingHandler.NewHandler(pricingSvc),
		wardHandler.NewHandler(wardSvc),
		directoryHandler.NewHandler(directorySvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
