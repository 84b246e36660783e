package assessments

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection("assessments")}
}

// EnsureIndexes creates the user+created_at index backing history reads
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("create assessment indexes: %w", err)
	}
	return nil
}

// Insert records a new assessment result
func (r *Repo) Insert(ctx context.Context, a *Assessment) error {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, a)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

// ListByUser retrieves one user's assessment history, newest first
func (r *Repo) ListByUser(ctx context.Context, user primitive.ObjectID) ([]*Assessment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer cursor.Close(ctx)

	var list []*Assessment
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode assessments: %w", err)
	}
	return list, nil
}
