package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrEventNotFound = errors.New("event not found")

type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection("events")}
}

// Insert creates a new event
func (r *Repo) Insert(ctx context.Context, ev *Event) error {
	ev.ID = primitive.NewObjectID()
	ev.CreatedAt = time.Now()
	ev.UpdatedAt = ev.CreatedAt

	_, err := r.coll.InsertOne(ctx, ev)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// List retrieves all events sorted by their date_time string ascending
func (r *Repo) List(ctx context.Context) ([]*Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date_time", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

// FindByID retrieves an event by its ID
func (r *Repo) FindByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	var event Event
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find event %s: %w", id, err)
	}
	return &event, nil
}
