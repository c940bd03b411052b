package platform

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/envc/internal/envfile"
	"github.com/thoreinstein/envc/internal/logging"
)

func sampleConfig() *envfile.Config {
	return &envfile.Config{
		Name:      "qt5",
		Path:      []string{"/a", "/b"},
		Lib:       []string{"/c"},
		Variables: map[string]string{"QTDIR": "/a"},
	}
}

func TestRenderLinuxInfo(t *testing.T) {
	var buf bytes.Buffer
	p, _ := Lookup("linux")
	p.RenderInfo(&buf, sampleConfig())

	want := "QTDIR=/a\n" +
		"PATH=/a:/b:$PATH)\n" +
		"LD_LIBRARY_PATH=/c:$LD_LIBRARY_PATH\n"
	if buf.String() != want {
		t.Errorf("RenderInfo() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestRenderLinuxInfo_VariablesSorted(t *testing.T) {
	cfg := &envfile.Config{
		Name:      "multi",
		Path:      []string{"/p"},
		Lib:       []string{"/l"},
		Variables: map[string]string{"B": "2", "A": "1", "C": "3"},
	}

	var buf bytes.Buffer
	p, _ := Lookup("linux")
	p.RenderInfo(&buf, cfg)

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "A=1" || lines[1] != "B=2" || lines[2] != "C=3" {
		t.Errorf("variables should print in sorted key order, got %v", lines[:3])
	}
}

func TestRenderWindowsInfo(t *testing.T) {
	var buf bytes.Buffer
	p, _ := Lookup("windows")
	p.RenderInfo(&buf, sampleConfig())

	want := "QTDIR=/a\n" +
		"PATH=/a;/b;%PATH%\n"
	if buf.String() != want {
		t.Errorf("RenderInfo() =\n%q\nwant\n%q", buf.String(), want)
	}
	if strings.Contains(buf.String(), "LD_LIBRARY_PATH") {
		t.Error("windows info must not include LD_LIBRARY_PATH")
	}
}

func TestLinuxScript(t *testing.T) {
	p, _ := Lookup("linux")
	script := string(p.Script(sampleConfig()))

	for _, want := range []string{
		"PS1='\\e[0;31m(qt5)> \\e[m'\n",
		"QTDIR=/a\n",
		"PATH=/a:/b:$PATH\n",
		"LD_LIBRARY_PATH=/c:$LD_LIBRARY_PATH\n",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q:\n%s", want, script)
		}
	}
}

func TestWindowsScript(t *testing.T) {
	p, _ := Lookup("windows")
	script := string(p.Script(sampleConfig()))

	for _, want := range []string{
		"@echo off\n",
		"if not defined PROMPT set PROMPT=$P$G\n",
		"if not defined __ENV_OLD_PROMPT__ set __ENV_OLD_PROMPT__=%PROMPT%\n",
		"set QTDIR=/a\n",
		"set PATH=/a;/b;%PATH%\n",
		`@cmd /k "set PROMPT=[qt5] %__ENV_OLD_PROMPT__%"`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q:\n%s", want, script)
		}
	}
}

func TestApplyLinux_ShellFailureReported(t *testing.T) {
	p, _ := Lookup("linux")

	err := p.Apply(logging.ForTest(t), ApplyOptions{
		Home:  t.TempDir(),
		Shell: "/nonexistent/shell-binary",
	}, sampleConfig())
	if err == nil {
		t.Error("Apply() with a missing shell should report an error")
	}
}
