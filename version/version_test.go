package version

import (
	"strings"
	"testing"
)

func TestShortContainsVersion(t *testing.T) {
	if got := Short(); !strings.HasPrefix(got, Version) {
		t.Fatalf("expected %q to start with %q", got, Version)
	}
}
