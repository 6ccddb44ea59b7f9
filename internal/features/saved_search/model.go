package saved_search

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedSearch is a named, reusable set of search criteria. Criteria keys use
// the same field names as the advanced search endpoint and are stored as an
// opaque blob.
type SavedSearch struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	SearchType  string             `json:"search_type" bson:"search_type"` // "simple" or "advanced"
	Criteria    map[string]string  `json:"criteria" bson:"criteria"`
	UsageCount  int                `json:"usage_count" bson:"usage_count"`
	LastUsedAt  *time.Time         `json:"last_used_at,omitempty" bson:"last_used_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
