package query

import (
	"testing"
	"time"
)

func TestParseDateToken(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  *DateRange
	}{
		{
			name:  "today starts at midnight",
			token: "today",
			want:  &DateRange{Start: "20240315", End: "20240315"},
		},
		{
			name:  "week is 7 days back",
			token: "week",
			want:  &DateRange{Start: "20240308", End: "20240315"},
		},
		{
			name:  "month is 30 days back",
			token: "month",
			want:  &DateRange{Start: "20240214", End: "20240315"},
		},
		{
			name:  "year is 365 days back",
			token: "year",
			want:  &DateRange{Start: "20230316", End: "20240315"},
		},
		{
			name:  "total means no filter",
			token: "total",
			want:  nil,
		},
		{
			name:  "empty means no filter",
			token: "",
			want:  nil,
		},
		{
			name:  "garbage means no filter",
			token: "lastquarter",
			want:  nil,
		},
		{
			name:  "case insensitive",
			token: "ToDay",
			want:  &DateRange{Start: "20240315", End: "20240315"},
		},
		{
			name:  "literal iso date yields one-day window",
			token: "2024-01-05",
			want:  &DateRange{Start: "20240105", End: "20240106"},
		},
		{
			name:  "literal legacy date yields one-day window",
			token: "05-jan-2024",
			want:  &DateRange{Start: "20240105", End: "20240106"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDateToken(tt.token, now)
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("ParseDateToken(%q) = %v, want %v", tt.token, got, tt.want)
			}
			if got == nil {
				return
			}
			if got.Start != tt.want.Start || got.End != tt.want.End {
				t.Errorf("ParseDateToken(%q) = [%s, %s], want [%s, %s]",
					tt.token, got.Start, got.End, tt.want.Start, tt.want.End)
			}
		})
	}
}

func TestNormalizeISODate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-05", "20240105"},
		{" 2024-01-05 ", "20240105"},
		{"20240105", "20240105"},
		{"2024-13-05", ""},
		{"05-Jan-24", ""},
		{"", ""},
		{"abcdefgh", ""},
	}

	for _, tt := range tests {
		if got := NormalizeISODate(tt.in); got != tt.want {
			t.Errorf("NormalizeISODate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExtractNumeric(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"12.5 Kg", 12.5, true},
		{"12,5 Kg", 125, true},
		{"Kg", 0, false},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"", 0, false},
		{"  42  ", 42, true},
		{"$1,200.50", 1200.50, true},
		{"1.2.3", 0, false},
		{".", 0, false},
		{"weight: 7.2kg approx", 7.2, true},
	}

	for _, tt := range tests {
		got, ok := ExtractNumeric(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ExtractNumeric(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ExtractNumeric(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLegacyDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"05-Jan-24", "20240105"},
		{"31-Dec-23", "20231231"},
		{"2024-01-05", "2024-01-05"},
		{"05-jan-24", "05-jan-24"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeLegacyDate(tt.in); got != tt.want {
			t.Errorf("NormalizeLegacyDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
