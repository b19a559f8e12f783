package monitoring

import (
	"fmt"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) {
		called = true
	})
	Logf("test message")
	if !called {
		t.Error("custom logger was not called")
	}

	// nil installs a no-op; this must not panic
	SetLogger(nil)
	Logf("test message")
}

func TestWarnf(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) {
		got = fmt.Sprintf(format, v...)
	})

	Warnf("distance is %s at frame %d", "NaN", 7)

	if !strings.HasPrefix(got, "[warn] ") {
		t.Errorf("Warnf output %q missing [warn] prefix", got)
	}
	if !strings.Contains(got, "distance is NaN at frame 7") {
		t.Errorf("Warnf output %q missing formatted message", got)
	}
}
