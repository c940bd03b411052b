package envfile

import (
	"os"
	"sort"
)

// expand resolves $VAR and ${VAR} references in variable values and in
// path/lib entries, in place.
//
// Resolution order: the config's own variables first, then the process
// environment. References that resolve to neither are rewritten to the
// ${VAR} form and left for the subshell to expand at source time. A
// variable that participates in a reference cycle is likewise left as a
// literal ${VAR} reference.
func (c *Config) expand() {
	e := &expander{
		vars:     c.Variables,
		resolved: make(map[string]string, len(c.Variables)),
		visiting: make(map[string]bool),
	}

	expanded := make(map[string]string, len(c.Variables))
	for name := range c.Variables {
		expanded[name] = e.resolve(name)
	}
	c.Variables = expanded

	for i, entry := range c.Path {
		c.Path[i] = os.Expand(entry, e.resolve)
	}
	for i, entry := range c.Lib {
		c.Lib[i] = os.Expand(entry, e.resolve)
	}
}

// expander memoizes variable resolution and tracks the in-progress set for
// cycle detection.
type expander struct {
	vars     map[string]string
	resolved map[string]string
	visiting map[string]bool
}

func (e *expander) resolve(name string) string {
	if v, ok := e.resolved[name]; ok {
		return v
	}
	if e.visiting[name] {
		// Cycle: keep the reference literal.
		return "${" + name + "}"
	}

	raw, ok := e.vars[name]
	if !ok {
		if v, ok := os.LookupEnv(name); ok {
			return v
		}
		return "${" + name + "}"
	}

	e.visiting[name] = true
	v := os.Expand(raw, e.resolve)
	delete(e.visiting, name)

	e.resolved[name] = v
	return v
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
