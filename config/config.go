package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/ncobase/npage/paging"
)

var validate = validator.New()

// Provider loads and holds per-operation pagination configurations.
type Provider struct {
	v    *viper.Viper
	path string

	mu      sync.RWMutex
	configs map[string]paging.Config
}

// New reads the configuration file at path and returns a provider.
func New(path string) (*Provider, error) {
	p := &Provider{
		v:    viper.New(),
		path: path,
	}
	p.v.SetConfigFile(path)
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Load reads a configuration file once and returns the operation mapping.
func Load(path string) (map[string]paging.Config, error) {
	p, err := New(path)
	if err != nil {
		return nil, err
	}
	return p.Configs(), nil
}

// Reload re-reads the configuration file.
func (p *Provider) Reload() error {
	if err := p.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: failed to read %s: %w", p.path, err)
	}
	configs, err := parseOperations(p.v.Get("operations"))
	if err != nil {
		return fmt.Errorf("config: %s: %w", p.path, err)
	}

	p.mu.Lock()
	p.configs = configs
	p.mu.Unlock()
	return nil
}

// Configs returns a copy of the operation mapping.
func (p *Provider) Configs() map[string]paging.Config {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]paging.Config, len(p.configs))
	for name, cfg := range p.configs {
		out[name] = cfg
	}
	return out
}

// Config returns the configuration registered for an operation name.
func (p *Provider) Config(name string) (paging.Config, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	cfg, ok := p.configs[name]
	return cfg, ok
}

// Registry builds a paging registry from the current mapping. primary may
// be nil.
func (p *Provider) Registry(primary paging.Factory) *paging.Registry {
	return paging.NewRegistry(p.Configs(), primary)
}

// Watch reloads the file when it changes and invokes callback with the new
// mapping. A file that fails to reload keeps the previous mapping.
func (p *Provider) Watch(callback func(map[string]paging.Config)) {
	p.v.WatchConfig()
	p.v.OnConfigChange(func(_ fsnotify.Event) {
		if err := p.Reload(); err != nil {
			return
		}
		if callback != nil {
			callback(p.Configs())
		}
	})
}

// parseOperations decodes the operations list into named configs.
func parseOperations(raw any) (map[string]paging.Config, error) {
	configs := make(map[string]paging.Config)
	if raw == nil {
		return configs, nil
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("operations must be a list, got %T", raw)
	}

	for i, entry := range entries {
		fields, ok := toStringKeyMap(entry)
		if !ok {
			return nil, fmt.Errorf("operations[%d] must be a mapping, got %T", i, entry)
		}

		name := stringField(fields, "name")
		if name == "" {
			return nil, fmt.Errorf("operations[%d] is missing a name", i)
		}
		if _, exists := configs[name]; exists {
			return nil, fmt.Errorf("operation %q is configured twice", name)
		}

		cfg := paging.Config{
			InputToken:    stringListField(fields, "input_token"),
			OutputToken:   stringListField(fields, "output_token"),
			LimitKey:      stringField(fields, "limit_key"),
			ResultKey:     stringField(fields, "result_key"),
			MoreResults:   stringField(fields, "more_results"),
			Limit:         intField(fields, "limit"),
			PageSize:      intField(fields, "page_size"),
			MaxEmptyPages: intField(fields, "max_empty_pages"),
		}
		if err := validateConfig(name, cfg); err != nil {
			return nil, err
		}
		configs[name] = cfg
	}
	return configs, nil
}

// validateConfig applies struct tag validation plus the composite token
// arity invariant.
func validateConfig(name string, cfg paging.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("operation %q: %w", name, err)
	}
	if cfg.HasInputToken() && cfg.HasOutputToken() && len(cfg.InputToken) != len(cfg.OutputToken) {
		return fmt.Errorf("operation %q: input_token and output_token must have the same length (%d != %d)",
			name, len(cfg.InputToken), len(cfg.OutputToken))
	}
	return nil
}
