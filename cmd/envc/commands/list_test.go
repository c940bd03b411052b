package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/envc/internal/logging"
)

// useEnvDir points the command layer at a temp environment directory for the
// duration of one test.
func useEnvDir(t *testing.T, dir string) {
	t.Helper()
	prev := configDirFlag
	configDirFlag = dir
	t.Cleanup(func() { configDirFlag = prev })
}

func writeEnv(t *testing.T, dir, file, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(content), 0644))
}

func skipOnUnsupportedHost(t *testing.T) {
	t.Helper()
	if runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		t.Skipf("no platform profile for %s", runtime.GOOS)
	}
}

func TestRunList(t *testing.T) {
	skipOnUnsupportedHost(t)

	dir := t.TempDir()
	writeEnv(t, dir, "b.json", `{"name":"qt6","path":[],"lib":[],"variables":{}}`)
	writeEnv(t, dir, "a.json", `{"name":"qt5","path":[],"lib":[],"variables":{}}`)
	writeEnv(t, dir, "notes.txt", "ignored")
	useEnvDir(t, dir)

	var buf bytes.Buffer
	err := runListWithWriter(logging.ForTest(t), &buf)
	require.NoError(t, err)

	assert.Equal(t, "qt5\nqt6\n", buf.String())
}

func TestRunList_JSON(t *testing.T) {
	skipOnUnsupportedHost(t)

	dir := t.TempDir()
	writeEnv(t, dir, "a.json", `{"name":"qt5","path":[],"lib":[],"variables":{}}`)
	useEnvDir(t, dir)

	listJSON = true
	t.Cleanup(func() { listJSON = false })

	var buf bytes.Buffer
	err := runListWithWriter(logging.ForTest(t), &buf)
	require.NoError(t, err)

	assert.JSONEq(t, `["qt5"]`, buf.String())
}

func TestRunList_EmptyDirectory(t *testing.T) {
	skipOnUnsupportedHost(t)

	useEnvDir(t, t.TempDir())

	var buf bytes.Buffer
	err := runListWithWriter(logging.ForTest(t), &buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestRunList_MissingDirectory(t *testing.T) {
	skipOnUnsupportedHost(t)

	useEnvDir(t, filepath.Join(t.TempDir(), "absent"))

	var buf bytes.Buffer
	err := runListWithWriter(logging.ForTest(t), &buf)
	require.Error(t, err)
}
