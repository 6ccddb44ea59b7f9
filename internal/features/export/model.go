package export

// ExportRequest describes one export job. Callers either post the rows to
// render directly in Data, or give Filters/DateFilter (same field names as
// the advanced search endpoint) and let the server query them.
type ExportRequest struct {
	Format     string                   `json:"format"`
	Data       []map[string]interface{} `json:"data"`
	DateFilter string                   `json:"date_filter"`
	Filters    map[string]string        `json:"filters"`
	Limit      int                      `json:"limit"`
}

// ExportResult is returned once the file is written and ready to download.
type ExportResult struct {
	Success     bool   `json:"success"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	Format      string `json:"format"`
	RecordCount int    `json:"record_count"`
}

// defaultExportLimit caps an export that gives no explicit limit.
const defaultExportLimit = 10000

// exportColumns fixes the column set and order of every exported file.
var exportColumns = []string{
	"id",
	"number_shipment",
	"shipment_reference_number",
	"country_code",
	"number_of_shipment_boxes",
	"shipment_description",
	"pdf_filename",
	"shipment_creation_date",
	"processing_date",
	"shipment_weight",
	"cod",
	"shipper_name",
	"shipper_address",
	"shipper_city",
	"shipper_phone",
	"consignee_name",
	"consignee_address",
	"consignee_city",
	"consignee_phone",
}
