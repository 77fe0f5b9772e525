package cli

import (
	"testing"

	"github.com/example/ledgerwatch/internal/ctxutil"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"alice,bob,carol", []string{"alice", "bob", "carol"}},
		{" alice , ,bob ", []string{"alice", "bob"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := splitList(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitList(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNewContext_CarriesIdentity(t *testing.T) {
	t.Cleanup(func() { SetIdentity("", "") })

	SetIdentity("ops-7", "acme")
	ctx := NewContext()
	if got := ctxutil.ActorFromContext(ctx); got != "ops-7" {
		t.Errorf("actor = %q, want ops-7", got)
	}
	if got := ctxutil.TenantFromContext(ctx); got != "acme" {
		t.Errorf("tenant = %q, want acme", got)
	}
}

func TestSetIdentity_ActorFallback(t *testing.T) {
	t.Cleanup(func() { SetIdentity("", "") })
	t.Setenv("LEDGERWATCH_ACTOR", "ci-bot")

	SetIdentity("", "")
	if got := ctxutil.ActorFromContext(NewContext()); got != "ci-bot" {
		t.Errorf("actor = %q, want ci-bot", got)
	}
}
