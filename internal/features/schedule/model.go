package schedule

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cadence describes when a scheduled report fires. Weekly schedules list the
// weekdays by their short names ("mon" .. "sun").
type Cadence struct {
	Frequency string   `json:"frequency" bson:"frequency"` // "daily" or "weekly"
	Time      string   `json:"time" bson:"time"`           // "HH:MM", 24h clock
	Days      []string `json:"days,omitempty" bson:"days,omitempty"`
}

// ScheduledReport runs a stored report on a cadence and drops the rendered
// file into the export directory.
type ScheduledReport struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReportID  primitive.ObjectID `json:"report_id" bson:"report_id"`
	Name      string             `json:"name" bson:"name"`
	Cadence   Cadence            `json:"cadence" bson:"cadence"`
	Format    string             `json:"format" bson:"format"`
	// Recipients are stored with the schedule; actual delivery is out of
	// scope, the artifact lands in the export directory.
	Recipients []string `json:"recipients,omitempty" bson:"recipients,omitempty"`
	Active    bool               `json:"active" bson:"active"`
	NextRun   *time.Time         `json:"next_run,omitempty" bson:"next_run,omitempty"`
	LastRunAt *time.Time         `json:"last_run_at,omitempty" bson:"last_run_at,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
