package envfile

import (
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/thoreinstein/envc/internal/errors"
)

// Registry is the in-memory collection of all environments discovered in
// one run, keyed by display name.
type Registry struct {
	envs map[string]*Config
}

// LoadDir builds a Registry by scanning dir (non-recursive) for environment
// files.
//
// Only regular entries whose final dot-separated segment equals "json" are
// considered: "env.a.json" qualifies, "env.json.bak" and "notes.txt" do not.
// Subdirectories are skipped. Files that fail to load are skipped with a
// debug-level log entry and do not abort the scan.
//
// Entries are processed in lexicographic filename order, so when two files
// declare the same name the lexicographically later file wins. A missing
// directory is fatal and yields ErrConfigDirNotFound.
func LoadDir(log *slog.Logger, dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrConfigDirNotFound, "%s", dir)
		}
		return nil, errors.Wrapf(err, "reading directory %s", dir)
	}

	r := &Registry{envs: make(map[string]*Config)}

	// os.ReadDir returns entries sorted by filename, which makes the
	// duplicate-name last-wins policy deterministic.
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !hasJSONExt(entry.Name()) {
			log.Debug("skipping non-environment file", "file", entry.Name())
			continue
		}

		path := dir + string(os.PathSeparator) + entry.Name()
		cfg, err := Load(path)
		if err != nil {
			log.Debug("skipping unreadable environment file", "file", entry.Name(), "error", err)
			continue
		}

		if prev, ok := r.envs[cfg.Name]; ok {
			log.Debug("environment redefined, later file wins",
				"name", cfg.Name, "previous", prev.File, "file", path)
		}
		r.envs[cfg.Name] = cfg
	}

	log.Debug("registry built", "dir", dir, "environments", len(r.envs))

	return r, nil
}

// hasJSONExt reports whether the final dot-separated segment of name equals
// the literal "json". A name without a dot never qualifies.
func hasJSONExt(name string) bool {
	i := strings.LastIndexByte(name, '.')
	return i >= 0 && name[i+1:] == "json"
}

// Get returns the environment registered under name.
func (r *Registry) Get(name string) (*Config, bool) {
	cfg, ok := r.envs[name]
	return cfg, ok
}

// Names returns all registered environment names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.envs))
	for name := range r.envs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered environments.
func (r *Registry) Len() int {
	return len(r.envs)
}
