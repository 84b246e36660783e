package assessments

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Save records an assessment result. Score may not exceed the total
// question count.
func (s *Service) Save(ctx context.Context, input SaveInput) (*Assessment, error) {
	user, err := primitive.ObjectIDFromHex(input.User)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	if input.Total <= 0 {
		return nil, fmt.Errorf("total must be positive")
	}
	if input.Score < 0 || input.Score > input.Total {
		return nil, fmt.Errorf("score must be between 0 and total")
	}

	a := &Assessment{
		User:  user,
		Score: input.Score,
		Total: input.Total,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// History retrieves one user's past results, newest first
func (s *Service) History(ctx context.Context, userID string) ([]*Assessment, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	return s.repo.ListByUser(ctx, user)
}
