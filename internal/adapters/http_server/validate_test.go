package httpserver

import "testing"

func TestParseHotelID(t *testing.T) {
	ok := map[string]int64{"0": 0, "1": 1, "42": 42, "007": 7}
	for in, want := range ok {
		got, err := parseHotelID(in)
		if err != nil || got != want {
			t.Fatalf("%q: got %d, %v", in, got, err)
		}
	}
	for _, in := range []string{"", "abc", "-1", "+1", "1.0", " 1", "1e3", "9223372036854775808"} {
		if _, err := parseHotelID(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestFormatTimeIsUTCWithMillis(t *testing.T) {
	ts := mustParse(t, "2026-03-01T09:30:00.123-03:00")
	if got := formatTime(ts); got != "2026-03-01T12:30:00.123Z" {
		t.Fatalf("got %q", got)
	}
}
