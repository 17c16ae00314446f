package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ppoom-app/ppoom/internal/api"
	"github.com/ppoom-app/ppoom/internal/app/estimator"
	"github.com/ppoom-app/ppoom/internal/app/notify"
	"github.com/ppoom-app/ppoom/internal/app/tracker"
	"github.com/ppoom-app/ppoom/internal/domain"
	"github.com/ppoom-app/ppoom/internal/health"
	"github.com/ppoom-app/ppoom/internal/infra/idle"
	_ "github.com/ppoom-app/ppoom/internal/infra/metrics" // Register Prometheus metrics
	"github.com/ppoom-app/ppoom/internal/infra/sqlite"
)

// Daemon is the core ppoom runtime. It wires together all services.
type Daemon struct {
	Config     Config
	DB         *sqlite.DB
	Tracker    *tracker.Service
	Dispatcher *notify.Dispatcher
	Sedentary  *estimator.SedentaryDetector
	Sleep      *estimator.SleepEstimator
	Input      *idle.Monitor
	Health     *health.Checker
	Server     *api.Server
	cancel     context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dataDir := ppoomHome()
	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	policy := domain.DefaultNotificationPolicy()
	if cfg.Notifications.QuietStart != "" {
		policy.QuietStart = cfg.Notifications.QuietStart
	}
	if cfg.Notifications.QuietEnd != "" {
		policy.QuietEnd = cfg.Notifications.QuietEnd
	}

	var sender notify.Sender = notify.LogSender{}
	if !cfg.Notifications.Enabled {
		sender = discardSender{}
	}
	dispatcher := notify.NewDispatcher(policy, sender, db)

	trk := tracker.NewService(db, dispatcher, cfg.Tracker.Baseline)

	checker := health.NewChecker(db, dataDir)
	d := &Daemon{
		Config:     cfg,
		DB:         db,
		Tracker:    trk,
		Dispatcher: dispatcher,
		Health:     checker,
		Server:     api.NewServer(trk, db, checker),
	}

	if cfg.Estimator.Enabled {
		d.Sedentary = estimator.NewSedentaryDetector(cfg.Estimator.Threshold(), time.Now())
		d.Sleep = estimator.NewSleepEstimator()
		d.Input = idle.NewMonitor()
		d.Input.OnActivity(d.Sedentary.OnUserActivity)
		d.Input.OnActivity(d.Sleep.OnUserActivity)
		trk.OnStepCount(d.Sedentary.UpdateStepCount)
	}

	if cfg.Telemetry.Prometheus {
		d.Server.EnableMetrics()
	}

	return d, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// Health checker (always runs)
	go d.Health.Run(ctx)

	if d.Sedentary != nil {
		go d.Input.Run(ctx)
		go d.Sedentary.Run(ctx)
		go d.Sleep.Run(ctx)
		go d.consumeEstimates(ctx)
	}

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("ppoom serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// consumeEstimates feeds estimator output into the tracker.
func (d *Daemon) consumeEstimates(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-d.Sedentary.Events():
			log.Printf("[daemon] sedentary stretch: %d minutes", ev.DurationMinutes)
			d.Tracker.OnSedentaryEvent(ev.DurationMinutes)
		case est := <-d.Sleep.Estimates():
			log.Printf("[daemon] sleep estimate for %s: %d minutes", est.Date, est.TotalMinutes)
			d.Tracker.OnSleepEstimate(est)
		}
	}
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}

// discardSender drops notifications when dispatch is disabled.
type discardSender struct{}

func (discardSender) Send(domain.Notification) error { return nil }
