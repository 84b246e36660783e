package events

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a community event hosted by a user. DateTime is a display
// string; the list endpoint sorts on it as stored.
type Event struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Host          primitive.ObjectID `bson:"host" json:"host"`
	Title         string             `bson:"title" json:"title"`
	DateTime      string             `bson:"date_time" json:"dateTime"`
	Location      string             `bson:"location" json:"location"`
	ContactNumber string             `bson:"contact_number" json:"contactNumber"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateInput is the input for creating an event
type CreateInput struct {
	Host          string `json:"host"`
	Title         string `json:"title"`
	DateTime      string `json:"dateTime"`
	Location      string `json:"location"`
	ContactNumber string `json:"contactNumber"`
}
