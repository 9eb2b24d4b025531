// Package gate is the public entry point of the license gate: it validates
// credentials, keeps the cached license current and launches the licensed
// application once access is granted.
package gate

import (
	"net/http"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	"github.com/LerianStudio/license-gate/internal/api"
	"github.com/LerianStudio/license-gate/internal/boot"
	"github.com/LerianStudio/license-gate/internal/cache"
	"github.com/LerianStudio/license-gate/internal/config"
	"github.com/LerianStudio/license-gate/internal/expiry"
	"github.com/LerianStudio/license-gate/internal/launcher"
	"github.com/LerianStudio/license-gate/internal/metrics"
	"github.com/LerianStudio/license-gate/internal/shutdown"
	"github.com/LerianStudio/license-gate/model"
	"golang.org/x/sync/singleflight"
)

// Client exposes every command the presentation layer can issue.
// No command returns an error: failures are reported in the result.
type Client struct {
	config          *config.ClientConfig
	apiClient       *api.Client
	records         *cache.RecordCache
	cacheManager    *cache.Manager
	sequencer       *boot.Sequencer
	overrides       launcher.OverrideStore
	resolver        *launcher.Resolver
	launcher        *launcher.Launcher
	presence        launcher.PresenceChecker
	shutdownManager *shutdown.Manager
	expiry          *expiry.Evaluator
	metrics         *metrics.Recorder
	goos            string
	logger          log.Logger

	// bootFlight coalesces concurrent boot and revalidation triggers.
	bootFlight singleflight.Group
	// mu serializes every change to the cached credential.
	mu sync.Mutex
}

type settings struct {
	httpClient *http.Client
	stores     []cache.Store
	overrides  launcher.OverrideStore
	strategies []launcher.Strategy
	minimizer  launcher.WindowMinimizer
	presence   launcher.PresenceChecker
	goos       string
	metrics    *metrics.Recorder
	now        func() time.Time
	environ    func() []string
}

// Option customizes a Client.
type Option func(*settings)

// WithHTTPClient sets the client used to fetch the license page.
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) { s.httpClient = c }
}

// WithStores replaces the credential cache tiers, highest priority first.
func WithStores(stores ...cache.Store) Option {
	return func(s *settings) { s.stores = stores }
}

// WithOverrideStore replaces where the user selected executable path is kept.
func WithOverrideStore(o launcher.OverrideStore) Option {
	return func(s *settings) { s.overrides = o }
}

// WithStrategies replaces the launch chain.
func WithStrategies(strategies ...launcher.Strategy) Option {
	return func(s *settings) { s.strategies = strategies }
}

// WithWindowMinimizer sets the host window hook called after a Windows launch.
func WithWindowMinimizer(m launcher.WindowMinimizer) Option {
	return func(s *settings) { s.minimizer = m }
}

// WithPresenceChecker replaces the running process check.
func WithPresenceChecker(p launcher.PresenceChecker) Option {
	return func(s *settings) { s.presence = p }
}

// WithGOOS overrides the detected operating system family.
func WithGOOS(goos string) Option {
	return func(s *settings) { s.goos = goos }
}

// WithMetrics sets the Prometheus recorder.
func WithMetrics(r *metrics.Recorder) Option {
	return func(s *settings) { s.metrics = r }
}

// WithClock sets the clock used for expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.now = now }
}

// WithEnviron sets the environment inherited by the launched application.
func WithEnviron(environ func() []string) Option {
	return func(s *settings) { s.environ = environ }
}

// New creates a gate Client from cfg. A nil logger uses the default zap logger.
func New(cfg model.Config, logger *log.Logger, opts ...Option) (*Client, error) {
	var l log.Logger
	if logger != nil {
		l = *logger
	} else {
		l = zap.InitializeLogger()
	}

	s := settings{goos: runtime.GOOS}
	for _, opt := range opts {
		opt(&s)
	}

	if s.metrics == nil {
		s.metrics = metrics.New()
	}

	clientCfg, err := config.FromModel(cfg, l)
	if err != nil {
		l.Errorf("Invalid configuration: %s", err.Error())
		return nil, err
	}

	records, err := cache.NewRecordCache(clientCfg.RecordCacheTTL)
	if err != nil {
		l.Errorf("Failed to initialize record cache: %s", err.Error())
		return nil, err
	}

	evaluator := expiry.New(s.now)
	apiClient := api.New(clientCfg, s.httpClient, records, evaluator, l)

	if s.stores == nil {
		s.stores = []cache.Store{
			cache.NewFileStore(clientCfg.CacheFile),
			cache.NewKeyringStore(clientCfg.KeyringService, clientCfg.KeyringAccount),
		}
	}

	cacheManager := cache.New(l, s.metrics, s.stores...)
	l.Debugf("Credential cache tiers: %s", strings.Join(cacheManager.Tiers(), ", "))

	if s.overrides == nil {
		s.overrides = launcher.NewFileOverrideStore(clientCfg.OverrideFile)
	}

	resolver := launcher.NewResolver(s.overrides, clientCfg.AppHint, clientCfg.PlatformCandidates, s.goos, l)

	if s.presence == nil {
		s.presence = launcher.NewPresenceChecker(s.goos, nil, l)
	}

	return &Client{
		config:       clientCfg,
		apiClient:    apiClient,
		records:      records,
		cacheManager: cacheManager,
		sequencer:    boot.New(cacheManager, apiClient, evaluator, l),
		overrides:    s.overrides,
		resolver:     resolver,
		launcher: launcher.New(launcher.Options{
			Resolver:        resolver,
			Strategies:      s.strategies,
			HandshakeSecret: clientCfg.HandshakeSecret,
			GOOS:            s.goos,
			Minimizer:       s.minimizer,
			Metrics:         s.metrics,
			Logger:          l,
			Environ:         s.environ,
		}),
		presence:        s.presence,
		shutdownManager: shutdown.New(),
		expiry:          evaluator,
		metrics:         s.metrics,
		goos:            s.goos,
		logger:          l,
	}, nil
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	c.apiClient.SetHTTPClient(client)
}

// SetTerminationHandler customizes what EnsureLicensed does when access is denied
func (c *Client) SetTerminationHandler(handler shutdown.Handler) {
	c.shutdownManager.SetHandler(handler)
}

// Metrics returns the recorder backing the /metrics endpoint.
func (c *Client) Metrics() *metrics.Recorder {
	return c.metrics
}

// ServerAddr returns the configured command server address.
func (c *Client) ServerAddr() string {
	return c.config.ServerAddr
}

// GetLogger returns the logger used by the client
func (c *Client) GetLogger() log.Logger {
	return c.logger
}

// Close releases background resources held by the record cache.
func (c *Client) Close() {
	c.records.Close()
}
