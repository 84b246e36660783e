package reminders

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

var ErrReminderNotFound = errors.New("reminder not found")

type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection("reminders")}
}

// EnsureIndexes creates the user+date index backing the day view
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user", Value: 1},
			{Key: "date", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("create reminder indexes: %w", err)
	}
	return nil
}

// Insert creates a new reminder
func (r *Repo) Insert(ctx context.Context, rem *Reminder) error {
	rem.ID = primitive.NewObjectID()
	rem.CreatedAt = time.Now()
	rem.UpdatedAt = rem.CreatedAt

	_, err := r.coll.InsertOne(ctx, rem)
	if err != nil {
		return fmt.Errorf("insert reminder: %w", err)
	}
	return nil
}

// ListByDate retrieves one user's reminders for a day, sorted by the
// time display string ascending. The sort is lexicographic, matching
// the client-side ordering.
func (r *Repo) ListByDate(ctx context.Context, user primitive.ObjectID, date string) ([]*Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{"user": user, "date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer cursor.Close(ctx)

	var reminders []*Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("decode reminders: %w", err)
	}
	return reminders, nil
}

// Delete removes a reminder by ID
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrReminderNotFound
	}
	return nil
}
