package query

import (
	"strings"
	"testing"
)

func TestSampleRows(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"today", 24000},
		{"week", 168000},
		{"month", 720000},
		{"year", 8640000},
		{"total", 100000},
		{"", 100000},
		{"garbage", 100000},
	}

	for _, tt := range tests {
		if got := SampleRows(tt.token); got != tt.want {
			t.Errorf("SampleRows(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestSampleCTE(t *testing.T) {
	cte := SampleCTE("id, shipper_name, shipment_weight", "week")

	if !strings.HasPrefix(cte, "WITH recent_shipments AS (") {
		t.Errorf("CTE malformed: %s", cte)
	}
	if !strings.Contains(cte, "ORDER BY id DESC LIMIT 168000") {
		t.Errorf("CTE must take the newest rows: %s", cte)
	}
	if !strings.Contains(cte, "id, shipper_name, shipment_weight") {
		t.Errorf("CTE missing projected columns: %s", cte)
	}
}
