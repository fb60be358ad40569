package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/gofrs/flock"

	"podclip/internal/config"
	"podclip/internal/httpapi"
	"podclip/internal/logging"
	"podclip/internal/preflight"
	"podclip/internal/store"
)

// ErrAlreadyRunning reports that another process holds the data directory lock.
var ErrAlreadyRunning = errors.New("another podclip server is already running")

// Daemon owns the API server lifecycle.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	api    *httpapi.Server

	lockPath string
	lock     *flock.Flock

	mu      sync.Mutex
	running atomic.Bool
	addr    string
	cancel  context.CancelFunc
	done    chan error
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool               `json:"running"`
	Address      string             `json:"address,omitempty"`
	DatabasePath string             `json:"databasePath"`
	LockFilePath string             `json:"lockFilePath"`
	Preflight    []preflight.Result `json:"preflight"`
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("daemon requires config and store")
	}
	logger = logging.NewComponentLogger(logger, "daemon")
	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		logger:   logger,
		store:    st,
		api:      httpapi.New(cfg, st, httpapi.WithLogger(logger)),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Start acquires the lock and begins serving the API in the background.
func (d *Daemon) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w (lock %s)", ErrAlreadyRunning, d.lockPath)
	}

	for _, result := range preflight.RunAll(ctx, d.cfg) {
		attrs := []logging.Attr{logging.String("check", result.Name), logging.String("detail", result.Detail)}
		switch {
		case result.Passed:
			d.logger.Debug("preflight check passed", logging.Args(attrs...)...)
		case result.Optional:
			d.logger.Info("optional dependency unavailable", logging.Args(attrs...)...)
		default:
			d.logger.Warn("preflight check failed", logging.Args(attrs...)...)
		}
	}

	listener, err := net.Listen("tcp", d.cfg.Paths.APIBind)
	if err != nil {
		_ = d.lock.Unlock()
		return fmt.Errorf("api listen: %w", err)
	}

	serveCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.addr = listener.Addr().String()
	d.done = make(chan error, 1)
	go func(done chan<- error) {
		done <- d.api.Serve(serveCtx, listener)
	}(d.done)

	d.running.Store(true)
	d.logger.Info("podclip server started",
		logging.String("address", d.addr),
		logging.String("lock", d.lockPath),
		logging.String("database", d.store.Path()),
	)
	return nil
}

// Stop stops the API server and releases the lock.
func (d *Daemon) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running.Load() {
		return nil
	}

	d.cancel()
	err := <-d.done
	d.cancel = nil
	d.done = nil
	d.addr = ""
	if unlockErr := d.lock.Unlock(); unlockErr != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(unlockErr))
	}
	d.running.Store(false)
	d.logger.Info("podclip server stopped")
	return err
}

// Run starts the daemon and blocks until ctx is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return d.Stop()
}

// Status reports runtime information.
func (d *Daemon) Status(ctx context.Context) Status {
	d.mu.Lock()
	addr := d.addr
	d.mu.Unlock()
	return Status{
		Running:      d.running.Load(),
		Address:      addr,
		DatabasePath: d.store.Path(),
		LockFilePath: d.lockPath,
		Preflight:    preflight.RunAll(ctx, d.cfg),
	}
}
