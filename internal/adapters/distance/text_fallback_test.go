package distance

import "testing"

func TestParseDistanceText(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"4.8 km", 4800},
		{"2,5 km", 2500},
		{"350 m", 350},
		{"1 mi", 1609},
		{"not a distance", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := parseDistanceText(c.in); got != c.want {
			t.Errorf("parseDistanceText(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseDurationTextSumsCompoundUnits(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12 mins", 720},
		{"1 hour 5 minutes", 3900},
		{"2 hours 30 mins 15 secs", 9015},
		{"1 day", 86400},
		{"90 seconds", 90},
		{"garbage", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := parseDurationText(c.in); got != c.want {
			t.Errorf("parseDurationText(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
