package generator

import (
	"fmt"

	"github.com/apiweave/docgen/document"
)

// Option is a function that configures a generation run
type Option func(*generateConfig) error

// generateConfig holds configuration for a generation run
type generateConfig struct {
	version       document.OASVersion
	info          *document.Info
	servers       []*document.Server
	host          string
	basePath      string
	schemes       []string
	filters       []Filter
	logger        Logger
	parallelism   int
	genericNaming NamingStrategy
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		version:       document.OASVersion303,
		logger:        NopLogger{},
		parallelism:   1,
		genericNaming: NamingOf,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// WithVersion selects the target specification version for assembled
// documents. Both major structural shapes are supported: Swagger 2.0
// (document.OASVersion20) and OpenAPI 3.x.
// Default: document.OASVersion303
func WithVersion(version document.OASVersion) Option {
	return func(cfg *generateConfig) error {
		if !version.IsValid() {
			return fmt.Errorf("generator: invalid target version %q", version)
		}
		cfg.version = version
		return nil
	}
}

// WithInfo injects the complete info block for assembled documents.
func WithInfo(info *document.Info) Option {
	return func(cfg *generateConfig) error {
		cfg.info = info
		return nil
	}
}

// WithTitle sets the document title and API version in the info block.
// A more complete info block can be injected with WithInfo.
func WithTitle(title, apiVersion string) Option {
	return func(cfg *generateConfig) error {
		if cfg.info == nil {
			cfg.info = &document.Info{}
		}
		cfg.info.Title = title
		cfg.info.Version = apiVersion
		return nil
	}
}

// WithServers sets the server list for OAS 3.x documents.
func WithServers(servers ...*document.Server) Option {
	return func(cfg *generateConfig) error {
		cfg.servers = servers
		return nil
	}
}

// WithHost sets host and basePath for Swagger 2.0 documents.
func WithHost(host, basePath string) Option {
	return func(cfg *generateConfig) error {
		cfg.host = host
		cfg.basePath = basePath
		return nil
	}
}

// WithSchemes sets the scheme list for Swagger 2.0 documents.
func WithSchemes(schemes ...string) Option {
	return func(cfg *generateConfig) error {
		cfg.schemes = schemes
		return nil
	}
}

// WithFilter registers a post-processing filter. Filters run against every
// assembled document in registration order; a filter error aborts the run.
func WithFilter(f Filter) Option {
	return func(cfg *generateConfig) error {
		if f == nil {
			return fmt.Errorf("generator: nil filter")
		}
		cfg.filters = append(cfg.filters, f)
		return nil
	}
}

// WithLogger sets the logger used during generation.
// Default: NopLogger
func WithLogger(logger Logger) Option {
	return func(cfg *generateConfig) error {
		if logger == nil {
			logger = NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}

// WithParallelism bounds the number of operations processed concurrently.
// The schema resolver must be safe for concurrent reads when n > 1.
// Per-operation diagnostics remain in input order regardless.
// Default: 1 (sequential, input order)
func WithParallelism(n int) Option {
	return func(cfg *generateConfig) error {
		if n < 1 {
			return fmt.Errorf("generator: parallelism must be >= 1, got %d", n)
		}
		cfg.parallelism = n
		return nil
	}
}

// WithGenericNaming selects how generic type references are flattened into
// reusable definition names.
// Default: NamingOf (e.g., Response[T:User] -> ResponseOfUser)
func WithGenericNaming(strategy NamingStrategy) Option {
	return func(cfg *generateConfig) error {
		cfg.genericNaming = strategy
		return nil
	}
}
