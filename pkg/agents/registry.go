package agents

import (
	"context"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/skillet-ai/skillet/pkg/logger"
)

//go:embed defs/*.yaml
var builtinFS embed.FS

// Registry holds the subagent definitions for one session. Built-ins
// load first; definitions found on disk override them by name, with
// the project-level directory beating the user-level one.
type Registry struct {
	overrideDirs []string
	defs         map[string]*Definition
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry) error

// WithDefinitionDirs sets custom override directories. Later
// directories win on name collisions.
func WithDefinitionDirs(dirs ...string) RegistryOption {
	return func(r *Registry) error {
		r.overrideDirs = dirs
		return nil
	}
}

// WithDefaultDirs sets the well-known override directories:
// user-level first, then project-level which shadows it.
func WithDefaultDirs() RegistryOption {
	return func(r *Registry) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		r.overrideDirs = []string{
			filepath.Join(homeDir, ".skillet", "agents"),
			filepath.Join(".skillet", "agents"),
		}
		return nil
	}
}

// NewRegistry builds a registry from the embedded definitions plus any
// on-disk overrides. Invalid override files are skipped with a warning.
func NewRegistry(ctx context.Context, opts ...RegistryOption) (*Registry, error) {
	r := &Registry{defs: make(map[string]*Definition)}

	if len(opts) == 0 {
		if err := WithDefaultDirs()(r); err != nil {
			return nil, err
		}
	} else {
		for _, opt := range opts {
			if err := opt(r); err != nil {
				return nil, err
			}
		}
	}

	if err := r.loadBuiltins(); err != nil {
		return nil, err
	}
	r.loadOverrides(ctx)

	return r, nil
}

func (r *Registry) loadBuiltins() error {
	entries, err := fs.ReadDir(builtinFS, "defs")
	if err != nil {
		return errors.Wrap(err, "failed to read built-in agent definitions")
	}

	for _, entry := range entries {
		content, err := fs.ReadFile(builtinFS, filepath.Join("defs", entry.Name()))
		if err != nil {
			return errors.Wrapf(err, "failed to read built-in agent %s", entry.Name())
		}
		def, err := Decode(content)
		if err != nil {
			return errors.Wrapf(err, "invalid built-in agent %s", entry.Name())
		}
		r.defs[def.Name] = def
	}

	return nil
}

func (r *Registry) loadOverrides(ctx context.Context) {
	log := logger.G(ctx)

	for _, dir := range r.overrideDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.WithField("dir", dir).Debug("Agent override directory not found, skipping")
			continue
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || (!strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml")) {
				continue
			}

			path := filepath.Join(dir, name)
			content, err := os.ReadFile(path)
			if err != nil {
				log.WithField("path", path).WithError(err).Warn("Failed to read agent definition, skipping")
				continue
			}

			def, err := Decode(content)
			if err != nil {
				log.WithField("path", path).WithError(err).Warn("Invalid agent definition, skipping")
				continue
			}

			r.defs[def.Name] = def
		}
	}
}

// Get returns a definition by name.
func (r *Registry) Get(name string) (*Definition, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// List returns all definitions sorted by name.
func (r *Registry) List() []*Definition {
	defs := make([]*Definition, 0, len(r.defs))
	for _, def := range r.defs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}
