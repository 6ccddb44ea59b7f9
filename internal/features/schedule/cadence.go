package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

var cronWeekdays = map[string]string{
	"sun": "0", "mon": "1", "tue": "2", "wed": "3",
	"thu": "4", "fri": "5", "sat": "6",
}

// CronSpec renders the cadence as a standard five-field cron expression.
func (c Cadence) CronSpec() (string, error) {
	hour, minute, err := parseClock(c.Time)
	if err != nil {
		return "", err
	}

	switch c.Frequency {
	case "daily":
		return fmt.Sprintf("%d %d * * *", minute, hour), nil
	case "weekly":
		if len(c.Days) == 0 {
			return "", fmt.Errorf("weekly cadence needs at least one day")
		}
		days := make([]string, 0, len(c.Days))
		for _, d := range c.Days {
			num, ok := cronWeekdays[strings.ToLower(d)]
			if !ok {
				return "", fmt.Errorf("unknown weekday: %s", d)
			}
			days = append(days, num)
		}
		return fmt.Sprintf("%d %d * * %s", minute, hour, strings.Join(days, ",")), nil
	default:
		return "", fmt.Errorf("unknown frequency: %s", c.Frequency)
	}
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("time must be HH:MM, got %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}
