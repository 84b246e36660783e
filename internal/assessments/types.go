package assessments

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment is one completed cognitive assessment result.
type Assessment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Score     int                `bson:"score" json:"score"`
	Total     int                `bson:"total" json:"total"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// SaveInput is the input for recording an assessment result
type SaveInput struct {
	User  string `json:"user"`
	Score int    `json:"score"`
	Total int    `json:"total"`
}
