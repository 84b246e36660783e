package users

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

// Register creates a user, rejecting a mobile number that is already
// taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*User, error) {
	fullName := strings.TrimSpace(input.FullName)
	mobile := strings.TrimSpace(input.Mobile)
	if fullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if mobile == "" {
		return nil, fmt.Errorf("mobile number is required")
	}

	user := &User{
		FullName:          fullName,
		Mobile:            mobile,
		Age:               input.Age,
		Gender:            input.Gender,
		PreferredLanguage: input.PreferredLanguage,
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login looks up an existing user by mobile number
func (s *Service) Login(ctx context.Context, input LoginInput) (*User, error) {
	mobile := strings.TrimSpace(input.Mobile)
	if mobile == "" {
		return nil, fmt.Errorf("mobile number is required")
	}
	return s.repo.FindByMobile(ctx, mobile)
}

// Profile retrieves a user by ID
func (s *Service) Profile(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}
	return s.repo.FindByID(ctx, oid)
}

// UpdateProfile applies a partial update. Name and mobile always
// update; age and emergency contact only when sent.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	fullName := strings.TrimSpace(input.FullName)
	mobile := strings.TrimSpace(input.Mobile)
	if fullName == "" || mobile == "" {
		return nil, fmt.Errorf("full name and mobile are required")
	}

	set := bson.M{
		"full_name": fullName,
		"mobile":    mobile,
	}
	if input.Age != nil {
		set["age"] = *input.Age
	}
	if input.EmergencyContact != nil {
		set["emergency_contact"] = *input.EmergencyContact
	}

	return s.repo.Update(ctx, oid, set)
}
