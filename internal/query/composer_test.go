package query

import (
	"strings"
	"testing"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 5, 1, 5},
		{"passthrough", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePage(tt.page, tt.limit, 10)
			if got.Page != tt.wantPage || got.Limit != tt.wantLimit {
				t.Errorf("NormalizePage(%d, %d, 10) = %+v", tt.page, tt.limit, got)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	tests := []struct {
		page  int
		limit int
		want  int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 20, 80},
	}

	for _, tt := range tests {
		p := PageRequest{Page: tt.page, Limit: tt.limit}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset() page=%d limit=%d = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

// whereOf extracts the WHERE section from a rendered statement, up to the
// trailing ORDER BY / LIMIT tail.
func whereOf(sql string) string {
	i := strings.Index(sql, " WHERE ")
	if i < 0 {
		return ""
	}
	tail := sql[i:]
	for _, stop := range []string{" ORDER BY ", " LIMIT "} {
		if j := strings.Index(tail, stop); j >= 0 {
			tail = tail[:j]
		}
	}
	return tail
}

func TestComposeCountAndDataAgree(t *testing.T) {
	b := BuildShipmentPredicates(map[string]string{
		"shipper_name": "acme",
		"country_code": "AE",
		"min_weight":   "5",
	})
	count, data := Compose("*", b, PageRequest{Page: 2, Limit: 20})

	// Rebind renumbers independently per statement, so compare the '?' form
	// by normalizing ordinals away.
	norm := func(s string) string {
		out := s
		for n := 9; n >= 1; n-- {
			out = strings.ReplaceAll(out, "$"+string(rune('0'+n)), "?")
		}
		return out
	}
	if whereOf(norm(count.SQL)) != whereOf(norm(data.SQL)) {
		t.Errorf("count and data statements disagree on WHERE:\n%s\n%s", count.SQL, data.SQL)
	}

	// data carries the shared args plus limit and offset
	if len(data.Args) != len(count.Args)+2 {
		t.Fatalf("data args = %v, count args = %v", data.Args, count.Args)
	}
	for i := range count.Args {
		if data.Args[i] != count.Args[i] {
			t.Errorf("shared arg %d differs: %v vs %v", i, data.Args[i], count.Args[i])
		}
	}
	if data.Args[len(data.Args)-2] != 20 || data.Args[len(data.Args)-1] != 20 {
		t.Errorf("limit/offset args = %v", data.Args[len(data.Args)-2:])
	}
}

func TestComposeOrderingPolicy(t *testing.T) {
	t.Run("unconstrained uses id scan", func(t *testing.T) {
		b := &Builder{}
		_, data := Compose("*", b, PageRequest{Page: 1, Limit: 10})
		if !strings.Contains(data.SQL, "ORDER BY id DESC") {
			t.Errorf("unconstrained query not ordered by id: %s", data.SQL)
		}
	})

	t.Run("time constrained orders by normalized date", func(t *testing.T) {
		b := &Builder{}
		AddDateRange(b, &DateRange{Start: "20240101", End: "20240201"})
		_, data := Compose("*", b, PageRequest{Page: 1, Limit: 10})
		if strings.Contains(data.SQL, "ORDER BY id DESC") {
			t.Errorf("time-constrained query ordered by id: %s", data.SQL)
		}
		if !strings.Contains(data.SQL, "shipment_creation_date") {
			t.Errorf("time-constrained query missing date ordering: %s", data.SQL)
		}
	})
}

func TestComposeRebindsPlaceholders(t *testing.T) {
	b := &Builder{}
	b.Where("country_code = ?", "AE")
	count, data := Compose("id, country_code", b, PageRequest{Page: 1, Limit: 10})

	if strings.Contains(count.SQL, "?") || strings.Contains(data.SQL, "?") {
		t.Errorf("unbound '?' placeholder survived: %s | %s", count.SQL, data.SQL)
	}
	if !strings.Contains(data.SQL, "$1") || !strings.Contains(data.SQL, "$3") {
		t.Errorf("data statement missing ordinals: %s", data.SQL)
	}
}

func TestComposeLimited(t *testing.T) {
	b := &Builder{}
	b.Where("consignee_city ILIKE ?", "%Dubai%")
	stmt := ComposeLimited("*", b, 50)

	if !strings.Contains(stmt.SQL, "LIMIT $2") {
		t.Errorf("limit not bound as final ordinal: %s", stmt.SQL)
	}
	if strings.Contains(stmt.SQL, "OFFSET") {
		t.Errorf("limited statement must not paginate: %s", stmt.SQL)
	}
	if len(stmt.Args) != 2 || stmt.Args[1] != 50 {
		t.Errorf("args = %v", stmt.Args)
	}
}
