package query

import (
	"fmt"
	"strconv"
)

// predicateClass picks the predicate shape a filter field contributes.
type predicateClass int

const (
	classExactInt predicateClass = iota
	classExactText
	classContains
	classCreationDateFrom
	classCreationDateTo
	classProcessingDateFrom
	classProcessingDateTo
	classWeightMin
	classWeightMax
	classCOD
)

type filterField struct {
	column string
	class  predicateClass
}

// advancedFields is the fixed allow-list for the multi-field search surface.
// Request field names map to real columns here; caller-supplied names never
// reach SQL text. Order is fixed so generated statements are deterministic.
var advancedFields = []struct {
	name  string
	field filterField
}{
	{"id", filterField{"id", classExactInt}},
	{"shipment_number", filterField{"number_shipment", classContains}},
	{"reference_number", filterField{"shipment_reference_number", classContains}},
	{"country_code", filterField{"country_code", classExactText}},
	{"number_of_boxes", filterField{"number_of_shipment_boxes", classExactInt}},
	{"description", filterField{"shipment_description", classContains}},
	{"pdf_filename", filterField{"pdf_filename", classContains}},
	{"creation_date_from", filterField{"shipment_creation_date", classCreationDateFrom}},
	{"creation_date_to", filterField{"shipment_creation_date", classCreationDateTo}},
	{"processing_date_from", filterField{"processing_date", classProcessingDateFrom}},
	{"processing_date_to", filterField{"processing_date", classProcessingDateTo}},
	{"min_weight", filterField{"shipment_weight", classWeightMin}},
	{"max_weight", filterField{"shipment_weight", classWeightMax}},
	{"cod", filterField{"cod", classCOD}},
	{"shipper_name", filterField{"shipper_name", classContains}},
	{"shipper_city", filterField{"shipper_city", classContains}},
	{"shipper_phone", filterField{"shipper_phone", classContains}},
	{"shipper_address", filterField{"shipper_address", classContains}},
	{"consignee_name", filterField{"consignee_name", classContains}},
	{"consignee_city", filterField{"consignee_city", classContains}},
	{"consignee_phone", filterField{"consignee_phone", classContains}},
	{"consignee_address", filterField{"consignee_address", classContains}},
}

// filterableColumns is the allow-list for the single-column filter endpoint.
// Only substring-matchable text columns are exposed there.
var filterableColumns = map[string]string{
	"number_shipment":           "number_shipment",
	"shipment_reference_number": "shipment_reference_number",
	"country_code":              "country_code",
	"shipment_description":      "shipment_description",
	"pdf_filename":              "pdf_filename",
	"shipper_name":              "shipper_name",
	"shipper_city":              "shipper_city",
	"shipper_phone":             "shipper_phone",
	"shipper_address":           "shipper_address",
	"consignee_name":            "consignee_name",
	"consignee_city":            "consignee_city",
	"consignee_phone":           "consignee_phone",
	"consignee_address":         "consignee_address",
}

// SearchColumns are the indexed text columns the free-text search fans out
// over.
var SearchColumns = []string{
	"shipper_name",
	"consignee_name",
	"shipper_city",
	"consignee_city",
	"number_shipment",
	"shipment_reference_number",
}

// LookupColumn resolves a caller-supplied column name against the fixed
// allow-list. ok is false for anything not explicitly listed.
func LookupColumn(name string) (string, bool) {
	col, ok := filterableColumns[name]
	return col, ok
}

// AdvancedFieldNames returns the recognized multi-field search parameter
// names in their fixed order, for echoing filter state back to callers.
func AdvancedFieldNames() []string {
	names := make([]string, 0, len(advancedFields))
	for _, f := range advancedFields {
		names = append(names, f.name)
	}
	return names
}

// BuildShipmentPredicates assembles the predicate list for a multi-field
// search request. Absent or empty values contribute no constraint. Optional
// values that fail to parse (numeric bounds, dates) are silently dropped
// rather than erroring: an ignorable refinement is less surprising than a
// hard failure.
func BuildShipmentPredicates(params map[string]string) *Builder {
	b := &Builder{}
	for _, entry := range advancedFields {
		raw, ok := params[entry.name]
		if !ok || raw == "" {
			continue
		}
		addPredicate(b, entry.field, raw)
	}
	return b
}

func addPredicate(b *Builder, f filterField, raw string) {
	switch f.class {
	case classExactInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		b.Where(f.column+" = ?", n)
	case classExactText:
		b.Where(f.column+" = ?", raw)
	case classContains:
		b.Where(f.column+" ILIKE ?", "%"+raw+"%")
	case classCreationDateFrom:
		if v := NormalizeISODate(raw); v != "" {
			b.WhereTime(LegacyDateExpr(f.column)+" >= ?", v)
		}
	case classCreationDateTo:
		if v := NormalizeISODate(raw); v != "" {
			b.WhereTime(LegacyDateExpr(f.column)+" <= ?", v)
		}
	case classProcessingDateFrom:
		if v := isoDate(raw); v != "" {
			b.WhereTime(f.column+" >= ?::date", v)
		}
	case classProcessingDateTo:
		if v := isoDate(raw); v != "" {
			b.WhereTime(f.column+" <= ?::date", v)
		}
	case classWeightMin:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			b.Where(NumericExpr(f.column)+" >= ?", v)
		}
	case classWeightMax:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			b.Where(NumericExpr(f.column)+" <= ?", v)
		}
	case classCOD:
		addCODPredicate(b, f.column, raw)
	}
}

// addCODPredicate handles the ternary COD classification: "yes" means the
// extracted amount is positive, "no" also matches null/empty values, and
// anything else contributes no constraint.
func addCODPredicate(b *Builder, column, raw string) {
	switch raw {
	case "yes":
		b.Where(NumericExpr(column) + " > 0")
	case "no":
		b.Where(fmt.Sprintf("(%[1]s IS NULL OR %[1]s = '' OR %[2]s = 0)", column, NumericExpr(column)))
	}
}

// AddDateRange appends the closed creation-date range predicate shared by
// the listing, filter and search endpoints. A nil range is a no-op.
func AddDateRange(b *Builder, r *DateRange) {
	if r == nil {
		return
	}
	expr := LegacyDateExpr("shipment_creation_date")
	b.WhereTime(expr+" >= ? AND "+expr+" <= ?", r.Start, r.End)
}
