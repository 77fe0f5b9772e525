package verification

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     int
	}{
		{
			name:     "empty window is perfect",
			statuses: nil,
			want:     100,
		},
		{
			name:     "all valid is perfect",
			statuses: []string{StatusValid, StatusValid, StatusValid},
			want:     100,
		},
		{
			name:     "all invalid is zero",
			statuses: []string{StatusInvalid, StatusInvalid},
			want:     0,
		},
		{
			name:     "two of three rounds up",
			statuses: []string{StatusValid, StatusValid, StatusInvalid},
			want:     67,
		},
		{
			name:     "one of three rounds down",
			statuses: []string{StatusValid, StatusInvalid, StatusInvalid},
			want:     33,
		},
		{
			name:     "pending counts toward total only",
			statuses: []string{StatusValid, StatusPending},
			want:     50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(TallyOf(tt.statuses))
			if got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

// Rounding hides a single invalid entry once 100*n/(n+1) >= 99.5 (n >= 199).
func TestScore_InvalidAfterValidStrictlyDecreases(t *testing.T) {
	for n := 1; n <= 150; n++ {
		statuses := make([]string, 0, n+1)
		for i := 0; i < n; i++ {
			statuses = append(statuses, StatusValid)
		}
		before := Score(TallyOf(statuses))
		after := Score(TallyOf(append(statuses, StatusInvalid)))
		if after >= before {
			t.Fatalf("n=%d: score after invalid = %d, want < %d", n, after, before)
		}
	}
}

func TestScore_NonIncreasingInInvalid(t *testing.T) {
	prev := PerfectScore
	tally := Tally{}
	for i := 0; i < 50; i++ {
		tally.Add(StatusValid)
	}
	for i := 0; i < 60; i++ {
		tally.Add(StatusInvalid)
		got := Score(tally)
		if got > prev {
			t.Fatalf("score rose from %d to %d after invalid #%d", prev, got, i+1)
		}
		if got < 0 || got > 100 {
			t.Fatalf("score %d out of range", got)
		}
		prev = got
	}
}

func TestTally_Add(t *testing.T) {
	tally := TallyOf([]string{StatusValid, StatusInvalid, StatusPending, "bogus"})
	if tally.Total != 4 {
		t.Errorf("Total = %d, want 4", tally.Total)
	}
	if tally.Valid != 1 {
		t.Errorf("Valid = %d, want 1", tally.Valid)
	}
	if tally.Invalid != 1 {
		t.Errorf("Invalid = %d, want 1", tally.Invalid)
	}
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range []string{StatusValid, StatusInvalid, StatusPending} {
		if !IsKnownStatus(s) {
			t.Errorf("IsKnownStatus(%q) = false, want true", s)
		}
	}
	if IsKnownStatus("unknown") {
		t.Error("IsKnownStatus(\"unknown\") = true, want false")
	}
}
