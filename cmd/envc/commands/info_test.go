package commands

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/envc/internal/errors"
	"github.com/thoreinstein/envc/internal/logging"
)

func TestRunInfo_Known(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("asserts the linux info format")
	}

	dir := t.TempDir()
	writeEnv(t, dir, "qt5.json",
		`{"name":"qt5","path":["/a","/b"],"lib":["/c"],"variables":{"QTDIR":"/a"}}`)
	useEnvDir(t, dir)

	var buf bytes.Buffer
	if err := runInfoWithWriter(logging.ForTest(t), &buf, "qt5"); err != nil {
		t.Fatalf("runInfoWithWriter() error = %v", err)
	}

	want := "QTDIR=/a\nPATH=/a:/b:$PATH)\nLD_LIBRARY_PATH=/c:$LD_LIBRARY_PATH\n"
	if buf.String() != want {
		t.Errorf("output =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRunInfo_ExpandsVariables(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("asserts the linux info format")
	}

	dir := t.TempDir()
	writeEnv(t, dir, "qt.json",
		`{"name":"qt","path":["$QTDIR/bin"],"lib":[],"variables":{"QT5":"/opt/qt5","QTDIR":"$QT5"}}`)
	useEnvDir(t, dir)

	var buf bytes.Buffer
	if err := runInfoWithWriter(logging.ForTest(t), &buf, "qt"); err != nil {
		t.Fatalf("runInfoWithWriter() error = %v", err)
	}

	if !strings.Contains(buf.String(), "QTDIR=/opt/qt5\n") {
		t.Errorf("expected expanded QTDIR, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "PATH=/opt/qt5/bin:$PATH)") {
		t.Errorf("expected expanded PATH entry, got:\n%s", buf.String())
	}
}

func TestRunInfo_Unknown(t *testing.T) {
	skipOnUnsupportedHost(t)

	dir := t.TempDir()
	writeEnv(t, dir, "qt5.json", `{"name":"qt5","path":[],"lib":[],"variables":{}}`)
	useEnvDir(t, dir)

	var buf bytes.Buffer
	err := runInfoWithWriter(logging.ForTest(t), &buf, "nope")
	if !errors.Is(err, errors.ErrUnknownEnvironment) {
		t.Errorf("error = %v, want ErrUnknownEnvironment", err)
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatal("expected an ExitError")
	}
	if exitErr.Code != errors.ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, errors.ExitUser)
	}
}
