// Package platform supplies the OS-specific behaviors of the envc CLI,
// selected once per run.
//
// A [Profile] bundles everything that differs between operating systems:
// the home-directory resolver, path separators, the editor fallback chain,
// the info renderer, the shell-init script generator and the interactive
// launcher. [Lookup] recognizes the GOOS identifiers "linux" and "windows";
// any other host is rejected with an unknown-platform error before any work
// is performed.
//
// Both profiles are compiled unconditionally. Rendering and script
// generation are pure, so either profile can be exercised in tests on any
// host; only [Profile.Apply] writes files and spawns processes.
package platform
