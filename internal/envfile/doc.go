// Package envfile loads named environment definitions from JSON files and
// collects them into a per-run registry.
//
// Each file describes one environment with exactly four required top-level
// keys: name (string), path (array of strings), lib (array of strings) and
// variables (object, string to string). Extra keys are tolerated. Variable
// references like $QTDIR or ${QT5} are expanded at load time against the
// file's own variables first and the process environment second; whatever
// remains unresolved is left for the subshell.
//
// A registry is built with [LoadDir], which scans a single directory
// (non-recursive) and silently skips anything that is not a loadable
// environment file.
package envfile
