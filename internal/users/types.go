package users

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered app user. Sign-in is by mobile number only;
// there is no password credential.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName          string             `bson:"full_name" json:"fullName"`
	Mobile            string             `bson:"mobile" json:"mobile"`
	Age               *int               `bson:"age,omitempty" json:"age,omitempty"`
	Gender            string             `bson:"gender,omitempty" json:"gender,omitempty"`
	PreferredLanguage string             `bson:"preferred_language,omitempty" json:"preferredLanguage,omitempty"`
	EmergencyContact  *string            `bson:"emergency_contact,omitempty" json:"emergencyContact,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updatedAt"`
}

// RegisterInput is the input for creating a user
type RegisterInput struct {
	FullName          string `json:"fullName"`
	Mobile            string `json:"mobile"`
	Age               *int   `json:"age"`
	Gender            string `json:"gender"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// LoginInput identifies an existing user by mobile number
type LoginInput struct {
	Mobile string `json:"mobile"`
}

// UpdateProfileInput carries a partial profile update. Nil optional
// fields are left untouched; a present empty EmergencyContact clears
// the stored value.
type UpdateProfileInput struct {
	ID               string  `json:"id"`
	FullName         string  `json:"fullName"`
	Mobile           string  `json:"mobile"`
	Age              *int    `json:"age"`
	EmergencyContact *string `json:"emergencyContact"`
}
