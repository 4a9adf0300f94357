package clipboard

import "testing"

func TestCommandExists(t *testing.T) {
	if commandExists("definitely-not-a-real-command-12345") {
		t.Fatal("expected missing command to be reported as unavailable")
	}
}

func TestAvailableDoesNotPanic(t *testing.T) {
	// Result depends on the host; we only care that detection is safe.
	_ = Available()
}
