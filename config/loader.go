package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Loader reads a YAML config file and watches it, together with the network
// file it references, for changes.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *Config
	onChange []func(*Config)
}

// NewLoader creates a Loader and performs the initial load. The initial
// config must pass Validate.
func NewLoader(path string) (*Loader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config path %s: %w", path, err)
	}
	l := &Loader{path: abs}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg

	return l, nil
}

// Config returns the current (latest valid) configuration.
func (l *Loader) Config() *Config {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.current
}

// Dir returns the directory relative network paths resolve against.
func (l *Loader) Dir() string { return filepath.Dir(l.path) }

// OnChange registers a callback invoked after every successful reload.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Reload forces an immediate re-read of the config file. An invalid file
// leaves the current config in place and returns the error.
func (l *Loader) Reload() (*Config, error) {
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*Config), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}

	return cfg, nil
}

// Watch starts a background goroutine that reloads the config whenever the
// config file or the current network file is written, created or renamed
// into place. Directories are watched rather than files so editors that
// replace files atomically are still noticed. When a reload points
// network.file into another directory, that directory is added too.
// Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}

	// watched is only touched by this call and then by the goroutine below.
	watched := make(map[string]bool)
	watchDir := func(dir string) error {
		if watched[dir] {
			return nil
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("config watcher add %s: %w", dir, err)
		}
		watched[dir] = true

		return nil
	}
	watchNetworkDir := func() error {
		if nf := l.networkFile(); nf != "" {
			return watchDir(filepath.Dir(nf))
		}

		return nil
	}

	if err = watchDir(l.Dir()); err == nil {
		err = watchNetworkDir()
	}
	if err != nil {
		w.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				name := filepath.Clean(ev.Name)
				if name != l.path && name != l.networkFile() {
					continue
				}
				if _, err := l.Reload(); err != nil {
					slog.Warn("config reload failed, keeping previous config", "file", name, "err", err)
					continue
				}
				if err := watchNetworkDir(); err != nil {
					slog.Warn("network directory not watched", "err", err)
				}
				slog.Info("config reloaded", "file", name)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("config watcher error", "err", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

// networkFile returns the absolute path of the current network file, or "".
func (l *Loader) networkFile() string {
	cfg := l.Config()
	if cfg == nil || cfg.Network.File == "" {
		return ""
	}

	return resolvePath(l.Dir(), cfg.Network.File)
}

// resolvePath makes p absolute relative to dir.
func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	return filepath.Join(dir, p)
}

func (l *Loader) load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", l.path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", l.path, err)
	}
	applyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Defaults applied to zero-valued fields.
const (
	DefaultAddr           = ":8080"
	DefaultQueryTimeoutMs = 5000
	DefaultReadTimeoutMs  = 10000
	DefaultWriteTimeoutMs = 30000
	DefaultRandomDegree   = 3
	DefaultRandomExtent   = 1000.0
)

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Server.ReadTimeoutMs == 0 {
		cfg.Server.ReadTimeoutMs = DefaultReadTimeoutMs
	}
	if cfg.Server.WriteTimeoutMs == 0 {
		cfg.Server.WriteTimeoutMs = DefaultWriteTimeoutMs
	}
	if cfg.Router.QueryTimeoutMs == 0 {
		cfg.Router.QueryTimeoutMs = DefaultQueryTimeoutMs
	}
	if r := cfg.Network.Random; r != nil {
		if r.Degree == 0 {
			r.Degree = DefaultRandomDegree
		}
		if r.Extent == 0 {
			r.Extent = DefaultRandomExtent
		}
	}
}
