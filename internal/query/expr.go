package query

import "fmt"

// LegacyDateExpr builds the SQL expression normalizing the text-encoded
// "DD-Mon-YY" creation date into comparable YYYYMMDD form. Values that do not
// match the 9-character pattern pass through unchanged and sort
// lexicographically. They are never dropped.
//
// column must come from the fixed column allow-list, never from caller input.
func LegacyDateExpr(column string) string {
	return fmt.Sprintf(`CASE
        WHEN %[1]s LIKE '__-___-__' THEN
            '20' || substring(%[1]s, 8, 2) ||
            CASE substring(%[1]s, 4, 3)
                WHEN 'Jan' THEN '01'
                WHEN 'Feb' THEN '02'
                WHEN 'Mar' THEN '03'
                WHEN 'Apr' THEN '04'
                WHEN 'May' THEN '05'
                WHEN 'Jun' THEN '06'
                WHEN 'Jul' THEN '07'
                WHEN 'Aug' THEN '08'
                WHEN 'Sep' THEN '09'
                WHEN 'Oct' THEN '10'
                WHEN 'Nov' THEN '11'
                WHEN 'Dec' THEN '12'
            END ||
            substring(%[1]s, 1, 2)
        ELSE %[1]s
    END`, column)
}

// NumericExpr builds the SQL expression scrubbing a text-encoded numeric
// column (weight, COD amount) to a NUMERIC value: strip non-numeric
// characters, repair a leading bare point, strip a trailing bare point.
// NULL/empty input yields NULL. Mirrors ExtractNumeric for in-process use.
func NumericExpr(column string) string {
	return fmt.Sprintf(`CASE
        WHEN %[1]s IS NULL OR %[1]s = '' THEN NULL
        ELSE
            CAST(
                REGEXP_REPLACE(
                    REGEXP_REPLACE(
                        REGEXP_REPLACE(
                            TRIM(%[1]s),
                            '[^0-9.]', '', 'g'
                        ),
                        '^[.]', '0.', 'g'
                    ),
                    '[.]$', '', 'g'
                ) AS NUMERIC
            )
    END`, column)
}

// monthNumber maps the abbreviated month names used by the legacy date
// column. Exposed for the in-process normalizer tests.
var monthNumber = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// NormalizeLegacyDate is the in-process twin of LegacyDateExpr: it converts a
// 9-character "DD-Mon-YY" value to YYYYMMDD and returns any non-conforming
// input unchanged.
func NormalizeLegacyDate(s string) string {
	if len(s) != 9 || s[2] != '-' || s[6] != '-' {
		return s
	}
	month, ok := monthNumber[s[3:6]]
	if !ok {
		return s
	}
	return "20" + s[7:9] + month + s[0:2]
}
