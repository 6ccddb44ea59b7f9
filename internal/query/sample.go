package query

import "fmt"

// sampleRowsByToken caps the CTE row count per named time bucket. The caps
// assume a worst-case arrival rate of 1000 rows/hour, so each bucket holds at
// least the bucket's full span of traffic before sampling truncates anything.
var sampleRowsByToken = map[string]int{
	"today": 24000,
	"week":  168000,
	"month": 720000,
	"year":  8640000,
}

// fallbackSampleRows bounds aggregate scans when no time bucket applies.
const fallbackSampleRows = 100000

// SampleRows resolves the sampling cap for a date token. Unknown tokens and
// "total" get the fallback cap: a full-table aggregate over the unfiltered
// shipments table is never acceptable.
func SampleRows(token string) int {
	if n, ok := sampleRowsByToken[token]; ok {
		return n
	}
	return fallbackSampleRows
}

// SampleCTE renders the recent-sample CTE heading an aggregate statement. The
// inner scan walks the id index backwards so the sample is always the newest
// rows, not an arbitrary subset.
func SampleCTE(columns string, token string) string {
	return fmt.Sprintf(
		"WITH recent_shipments AS (SELECT %s FROM shipments ORDER BY id DESC LIMIT %d)",
		columns, SampleRows(token),
	)
}

// SampleNote is attached to every response computed over a sampled subset so
// callers can distinguish exact figures from estimates.
const SampleNote = "Results based on recent sample for performance"
