package catalog

import "testing"

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT1H30M15S", 5415},
		{"PT5M3S", 303},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"", 0},
		{"garbage", 0},
		{"5M3S", 0},
	}
	for _, tc := range cases {
		if got := ParseDuration(tc.in); got != tc.want {
			t.Fatalf("ParseDuration(%q): got %d want %d", tc.in, got, tc.want)
		}
	}
}
