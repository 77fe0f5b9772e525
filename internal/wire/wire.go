// Package wire provides dependency injection for the ledgerwatch application.
// A Registry builds one isolated set of services per tenant on first use.
package wire

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	cliadapter "github.com/example/ledgerwatch/internal/adapters/cli"
	"github.com/example/ledgerwatch/internal/adapters/filesystem"
	"github.com/example/ledgerwatch/internal/adapters/sqlite"
	"github.com/example/ledgerwatch/internal/app"
	"github.com/example/ledgerwatch/internal/config"
	"github.com/example/ledgerwatch/internal/db"
	"github.com/example/ledgerwatch/internal/logging"
	"github.com/example/ledgerwatch/internal/ports/primary"
	"github.com/example/ledgerwatch/internal/ports/secondary"
)

// Tenant holds one tenant's services. Tenants share the database handle and
// the oracle but nothing else.
type Tenant struct {
	Name      string
	Oracle    secondary.LedgerStatusOracle
	Events    secondary.EventLog
	History   primary.VerificationHistory
	Monitor   primary.IntegrityMonitor
	Approvals primary.ApprovalCoordinator
}

// MonitorAdapter returns a new MonitorAdapter writing to out.
func (t *Tenant) MonitorAdapter(out io.Writer) *cliadapter.MonitorAdapter {
	return cliadapter.NewMonitorAdapter(t.Monitor, out)
}

// ApprovalAdapter returns a new ApprovalAdapter writing to out.
func (t *Tenant) ApprovalAdapter(out io.Writer) *cliadapter.ApprovalAdapter {
	return cliadapter.NewApprovalAdapter(t.Approvals, out)
}

// Registry creates and caches tenants.
type Registry struct {
	cfg    *config.Config
	logger *slog.Logger
	clock  secondary.Clock
	db     *sql.DB
	oracle secondary.LedgerStatusOracle

	mu      sync.Mutex
	tenants map[string]*Tenant
}

// NewRegistry opens the database and selects the oracle named by cfg.
func NewRegistry(cfg *config.Config, logger *slog.Logger, clock secondary.Clock) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if clock == nil {
		clock = app.SystemClock()
	}

	path, err := cfg.ResolveDBPath()
	if err != nil {
		return nil, err
	}
	database, err := db.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	var oracle secondary.LedgerStatusOracle
	switch cfg.Oracle {
	case config.OracleFile:
		oracle = filesystem.NewStatusFileOracle(cfg.StatusFile)
	default:
		oracle = sqlite.NewLedgerStatusOracle(database)
	}

	logger.Debug("registry ready", "db_path", path, "oracle", cfg.Oracle)

	return &Registry{
		cfg:     cfg,
		logger:  logger,
		clock:   clock,
		db:      database,
		oracle:  oracle,
		tenants: make(map[string]*Tenant),
	}, nil
}

// Tenant returns the services for name, building them on first use.
// An empty name means the configured default tenant.
func (r *Registry) Tenant(name string) (*Tenant, error) {
	if name == "" {
		name = r.cfg.Tenant
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.tenants[name]; ok {
		return t, nil
	}

	timeout, err := r.cfg.OracleTimeoutDuration()
	if err != nil {
		return nil, err
	}

	logger := r.logger.With("tenant", name)
	events := sqlite.NewEventLog(r.db, name)
	history := app.NewVerificationHistory(r.cfg.HistoryCap, r.clock)
	alerts := app.NewAlertRegistry(r.clock, events)

	t := &Tenant{
		Name:    name,
		Oracle:  r.oracle,
		Events:  events,
		History: history,
		Monitor: app.NewIntegrityMonitor(r.oracle, history, alerts, r.clock, logger, app.MonitorOptions{
			RecentWindow:  r.cfg.RecentWindow,
			OracleTimeout: timeout,
			MaxConcurrent: r.cfg.MaxConcurrentChecks,
		}),
		Approvals: app.NewApprovalCoordinator(r.clock, events, logger),
	}
	r.tenants[name] = t

	logger.Debug("tenant ready")
	return t, nil
}

// Config returns the configuration the registry was built from.
func (r *Registry) Config() *config.Config {
	return r.cfg
}

// DB returns the shared database handle.
func (r *Registry) DB() *sql.DB {
	return r.db
}

// Close releases the database handle.
func (r *Registry) Close() error {
	return r.db.Close()
}

var (
	defaultRegistry *Registry
	defaultErr      error
	once            sync.Once
)

// Default returns the process-wide registry built from the config in the
// working directory (or the defaults when there is none), logging to stderr.
func Default() (*Registry, error) {
	once.Do(func() {
		dir, err := os.Getwd()
		if err != nil {
			defaultErr = fmt.Errorf("failed to get working directory: %w", err)
			return
		}
		cfg, err := config.LoadOrDefault(dir)
		if err != nil {
			defaultErr = err
			return
		}
		logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		if err != nil {
			defaultErr = err
			return
		}
		defaultRegistry, defaultErr = NewRegistry(cfg, logger, nil)
	})
	return defaultRegistry, defaultErr
}
