package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Document is one schema-less record. Products, reviews and orders all live
// in this table, partitioned by the Collection discriminator; the body is
// stored verbatim as JSONB and queried by field match.
type Document struct {
	ID         uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Collection string            `gorm:"size:50;not null;index" json:"-"`
	Data       datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"data"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// MarshalJSON flattens the body to the top level with the generated id as
// "_id", so responses look like the documents clients inserted.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(d.Data)+1)
	for k, v := range d.Data {
		out[k] = v
	}
	out["_id"] = d.ID
	return json.Marshal(out)
}
