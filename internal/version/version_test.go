package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	oldCommit := Commit
	t.Cleanup(func() { Commit = oldCommit })

	Commit = "0123456789abcdef"
	got := String()
	if !strings.HasPrefix(got, "ledgerwatch dev") {
		t.Errorf("String() = %q", got)
	}
	if !strings.Contains(got, "commit: 0123456") || strings.Contains(got, "0123456789") {
		t.Errorf("commit not shortened: %q", got)
	}
}
