package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a personality profile stored in MongoDB. All descriptive
// fields are optional; pointers plus omitempty keep unset fields out of the
// stored document so a GET returns exactly what was submitted plus the id.
type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         *string            `json:"name,omitempty" bson:"name,omitempty"`
	Description  *string            `json:"description,omitempty" bson:"description,omitempty"`
	MBTI         *string            `json:"mbti,omitempty" bson:"mbti,omitempty"`
	Enneagram    *string            `json:"enneagram,omitempty" bson:"enneagram,omitempty"`
	Variant      *string            `json:"variant,omitempty" bson:"variant,omitempty"`
	Tritype      *int               `json:"tritype,omitempty" bson:"tritype,omitempty"`
	Socionics    *string            `json:"socionics,omitempty" bson:"socionics,omitempty"`
	Sloan        *string            `json:"sloan,omitempty" bson:"sloan,omitempty"`
	Psyche       *string            `json:"psyche,omitempty" bson:"psyche,omitempty"`
	Temperaments *string            `json:"temperaments,omitempty" bson:"temperaments,omitempty"`
	Image        *string            `json:"image,omitempty" bson:"image,omitempty"`
	Comments     []Comment          `json:"comments,omitempty" bson:"comments,omitempty"`
}

// CreateUserRequest defines the request body for creating a new profile.
// Every field is optional, but the field set is closed: unknown keys are
// rejected at bind time.
type CreateUserRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	MBTI         *string `json:"mbti,omitempty"`
	Enneagram    *string `json:"enneagram,omitempty"`
	Variant      *string `json:"variant,omitempty"`
	Tritype      *int    `json:"tritype,omitempty"`
	Socionics    *string `json:"socionics,omitempty"`
	Sloan        *string `json:"sloan,omitempty"`
	Psyche       *string `json:"psyche,omitempty"`
	Temperaments *string `json:"temperaments,omitempty"`
	Image        *string `json:"image,omitempty"`
}

// ToUser builds the persistable document from the request.
func (r *CreateUserRequest) ToUser() *User {
	return &User{
		Name:         r.Name,
		Description:  r.Description,
		MBTI:         r.MBTI,
		Enneagram:    r.Enneagram,
		Variant:      r.Variant,
		Tritype:      r.Tritype,
		Socionics:    r.Socionics,
		Sloan:        r.Sloan,
		Psyche:       r.Psyche,
		Temperaments: r.Temperaments,
		Image:        r.Image,
	}
}
