package events

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Create validates and stores an event
func (s *Service) Create(ctx context.Context, input CreateInput) (*Event, error) {
	host, err := primitive.ObjectIDFromHex(input.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid host ID: %w", err)
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(input.DateTime) == "" {
		return nil, fmt.Errorf("dateTime is required")
	}
	if strings.TrimSpace(input.Location) == "" {
		return nil, fmt.Errorf("location is required")
	}
	if strings.TrimSpace(input.ContactNumber) == "" {
		return nil, fmt.Errorf("contactNumber is required")
	}

	ev := &Event{
		Host:          host,
		Title:         title,
		DateTime:      input.DateTime,
		Location:      input.Location,
		ContactNumber: input.ContactNumber,
	}
	if err := s.repo.Insert(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// List retrieves all events
func (s *Service) List(ctx context.Context) ([]*Event, error) {
	return s.repo.List(ctx)
}

// GetByID retrieves an event by ID
func (s *Service) GetByID(ctx context.Context, id string) (*Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid event ID: %w", err)
	}
	return s.repo.FindByID(ctx, oid)
}
