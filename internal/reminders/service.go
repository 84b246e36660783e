package reminders

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sukoon/internal/datekey"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Create validates and stores a reminder. The date must be a canonical
// day key; titles and times are required.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Reminder, error) {
	user, err := primitive.ObjectIDFromHex(input.User)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(input.Time) == "" {
		return nil, fmt.Errorf("time is required")
	}
	if !datekey.Valid(input.Date) {
		return nil, fmt.Errorf("date must be YYYY-MM-DD")
	}

	rem := &Reminder{
		User:     user,
		Title:    title,
		Time:     input.Time,
		Date:     input.Date,
		Category: input.Category,
		Repeat:   input.Repeat,
	}
	if err := s.repo.Insert(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

// ListByDate retrieves one user's reminders for a day
func (s *Service) ListByDate(ctx context.Context, userID, date string) ([]*Reminder, error) {
	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	if !datekey.Valid(date) {
		return nil, fmt.Errorf("date must be YYYY-MM-DD")
	}
	return s.repo.ListByDate(ctx, user, date)
}

// Delete removes a reminder by ID
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid reminder ID: %w", err)
	}
	return s.repo.Delete(ctx, oid)
}
