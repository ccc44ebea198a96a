package monitoring

import (
	"fmt"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var captured string
	SetLogger(func(format string, v ...interface{}) {
		captured = fmt.Sprintf(format, v...)
	})
	Logf("track %04d cleaned", 42)
	if captured != "track 0042 cleaned" {
		t.Errorf("captured = %q, want %q", captured, "track 0042 cleaned")
	}

	// nil installs a no-op, not a nil function
	SetLogger(nil)
	if Logf == nil {
		t.Fatal("Logf should never be nil")
	}
	Logf("must not panic")
}
