package parsing_test

import (
	"testing"

	"tubelist/internal/parsing"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already yyyymmdd", "20230301", "20230301"},
		{"hyphenated", "2023-03-01", "20230301"},
		{"word date", "Jan 2, 2006", "20060102"},
		{"unparseable passes through", "not a date", "not a date"},
		{"surrounding whitespace", "  20230301  ", "20230301"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parsing.NormalizeDate(tc.input); got != tc.want {
				t.Fatalf("NormalizeDate(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTimestampToDate(t *testing.T) {
	// 2024-01-01T00:00:00Z
	if got := parsing.TimestampToDate(1704067200); got != "20240101" {
		t.Fatalf("got %q, want 20240101", got)
	}
	if got := parsing.TimestampToDate(0); got != "" {
		t.Fatalf("zero timestamp should yield empty, got %q", got)
	}
	if got := parsing.TimestampToDate(-5); got != "" {
		t.Fatalf("negative timestamp should yield empty, got %q", got)
	}
}
