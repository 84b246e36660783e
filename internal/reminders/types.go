package reminders

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reminder is a synced reminder entry. Date is a canonical
// "YYYY-MM-DD" day key; Time is the display string the user picked
// ("9:00 a.m."), stored and sorted as-is.
type Reminder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Title     string             `bson:"title" json:"title"`
	Time      string             `bson:"time" json:"time"`
	Date      string             `bson:"date" json:"date"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
	Repeat    string             `bson:"repeat,omitempty" json:"repeat,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// CreateInput is the input for creating a reminder
type CreateInput struct {
	User     string `json:"user"`
	Title    string `json:"title"`
	Time     string `json:"time"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Repeat   string `json:"repeat"`
}
