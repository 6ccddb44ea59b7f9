package report

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomReport is a stored report definition. A report either carries an
// explicit read-only SQL statement or a set of filter criteria; when both are
// present the SQL wins and the criteria are ignored.
type CustomReport struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	SQL         string             `json:"sql,omitempty" bson:"sql,omitempty"`
	Filters     map[string]string  `json:"filters,omitempty" bson:"filters,omitempty"`
	DateFilter  string             `json:"date_filter,omitempty" bson:"date_filter,omitempty"`
	RunCount    int                `json:"run_count" bson:"run_count"`
	LastRunAt   *time.Time         `json:"last_run_at,omitempty" bson:"last_run_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// RunResult is one report execution.
type RunResult struct {
	Data  []map[string]interface{} `json:"data"`
	Count int                      `json:"count"`
}

// maxReportRows caps every report execution, explicit SQL included.
const maxReportRows = 10000
