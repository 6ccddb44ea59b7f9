package schedule

import (
	"testing"

	"github.com/robfig/cron/v3"
)

func TestCadenceCronSpec(t *testing.T) {
	tests := []struct {
		name    string
		cadence Cadence
		want    string
		wantErr bool
	}{
		{
			name:    "daily morning",
			cadence: Cadence{Frequency: "daily", Time: "08:30"},
			want:    "30 8 * * *",
		},
		{
			name:    "daily midnight",
			cadence: Cadence{Frequency: "daily", Time: "00:00"},
			want:    "0 0 * * *",
		},
		{
			name:    "weekly single day",
			cadence: Cadence{Frequency: "weekly", Time: "17:00", Days: []string{"fri"}},
			want:    "0 17 * * 5",
		},
		{
			name:    "weekly multiple days case insensitive",
			cadence: Cadence{Frequency: "weekly", Time: "09:15", Days: []string{"Mon", "WED"}},
			want:    "15 9 * * 1,3",
		},
		{
			name:    "weekly without days",
			cadence: Cadence{Frequency: "weekly", Time: "09:00"},
			wantErr: true,
		},
		{
			name:    "unknown weekday",
			cadence: Cadence{Frequency: "weekly", Time: "09:00", Days: []string{"someday"}},
			wantErr: true,
		},
		{
			name:    "unknown frequency",
			cadence: Cadence{Frequency: "hourly", Time: "09:00"},
			wantErr: true,
		},
		{
			name:    "bad clock",
			cadence: Cadence{Frequency: "daily", Time: "25:00"},
			wantErr: true,
		},
		{
			name:    "missing minutes",
			cadence: Cadence{Frequency: "daily", Time: "9"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cadence.CronSpec()
			if (err != nil) != tt.wantErr {
				t.Fatalf("CronSpec() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("CronSpec() = %q, want %q", got, tt.want)
			}
			// Everything we emit must parse as a standard cron expression.
			if _, err := cron.ParseStandard(got); err != nil {
				t.Errorf("emitted spec %q does not parse: %v", got, err)
			}
		})
	}
}
