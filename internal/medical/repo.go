package medical

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
	return &Repo{coll: db.Collection("medical_files")}
}

// EnsureIndexes creates the user+created_at index backing list reads
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("create medical file indexes: %w", err)
	}
	return nil
}

// Insert records a new uploaded file
func (r *Repo) Insert(ctx context.Context, f *File) error {
	f.ID = primitive.NewObjectID()
	f.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, f)
	if err != nil {
		return fmt.Errorf("insert medical file: %w", err)
	}
	return nil
}

// ListByUser retrieves one user's files, newest first
func (r *Repo) ListByUser(ctx context.Context, user primitive.ObjectID) ([]*File, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		return nil, fmt.Errorf("list medical files: %w", err)
	}
	defer cursor.Close(ctx)

	var files []*File
	if err := cursor.All(ctx, &files); err != nil {
		return nil, fmt.Errorf("decode medical files: %w", err)
	}
	return files, nil
}
