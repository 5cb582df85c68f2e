package services

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"2 hours", 120, true},
		{"1 hour 5 mins", 65, true},
		{"90 seconds", 2, true},
		{"30 secs", 1, true},
		{"12 mins", 12, true},
		{"1 min", 1, true},
		{"3 days", 4320, true},
		{"1 day 2 hours", 1560, true},
		{"2:30", 150, true},
		{"0:05", 5, true},
		{"45", 45, true},
		{"2.5", 3, true},
		{"garbage", 0, false},
		{"", 0, false},
		{"soon", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseTimeToMinutes(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseTimeToMinutes(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseTimeToMinutesDefaultPolicy(t *testing.T) {
	// Callers substitute this default for unparseable text instead of aborting.
	got, ok := ParseTimeToMinutes("garbage")
	if ok {
		t.Fatalf("garbage parsed to %d", got)
	}
	if defaultLegMinutes != 30 {
		t.Fatalf("default leg minutes = %d, want 30", defaultLegMinutes)
	}
}
