package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	return &buf
}

func TestInfof(t *testing.T) {
	buf := captureOutput(t)

	ForComponent("testinfo").Infof("hello %s", "world")

	out := buf.String()
	if !strings.Contains(out, "INFO [testinfo>] hello world") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestWarnfAndErrorf(t *testing.T) {
	buf := captureOutput(t)

	logger := ForComponent("testlevels")
	logger.Warnf("warn %d", 1)
	logger.Errorf("error %d", 2)

	out := buf.String()
	if !strings.Contains(out, "WARN [testlevels>] warn 1") {
		t.Errorf("missing warn line in %q", out)
	}
	if !strings.Contains(out, "ERROR [testlevels>] error 2") {
		t.Errorf("missing error line in %q", out)
	}
}

func TestDebugfSuppressedByDefault(t *testing.T) {
	buf := captureOutput(t)

	ForComponent("testquiet").Debugf("should not appear")

	if strings.Contains(buf.String(), "should not appear") {
		t.Errorf("debug output emitted while disabled: %q", buf.String())
	}
}

func TestDebugfPerComponent(t *testing.T) {
	buf := captureOutput(t)

	EnableDebugFor("testdebug")
	defer DisableDebugFor("testdebug")

	ForComponent("testdebug").Debugf("visible")
	ForComponent("testother").Debugf("invisible")

	out := buf.String()
	if !strings.Contains(out, "DEBUG [testdebug>] visible") {
		t.Errorf("missing debug line in %q", out)
	}
	if strings.Contains(out, "invisible") {
		t.Errorf("debug leaked for a disabled component: %q", out)
	}
}

func TestGlobalDebug(t *testing.T) {
	buf := captureOutput(t)

	SetGlobalDebug(true)
	defer SetGlobalDebug(false)

	ForComponent("testglobal").Debugf("global debug on")

	if !strings.Contains(buf.String(), "DEBUG [testglobal>] global debug on") {
		t.Errorf("missing debug line in %q", buf.String())
	}
}

func TestForComponentMemoizes(t *testing.T) {
	a := ForComponent("testmemo")
	b := ForComponent("testmemo")
	if a != b {
		t.Error("ForComponent returned distinct loggers for the same name")
	}
}

func TestForComponentEmptyName(t *testing.T) {
	if ForComponent("") != ForComponent("unknown") {
		t.Error("empty component name did not map to \"unknown\"")
	}
}
