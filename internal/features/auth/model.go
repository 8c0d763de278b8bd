package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user. The password hash never serializes
// outward (json:"-"); Photo is a base64-encoded image stored inline.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Photo     string             `bson:"photo" json:"photo"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      string             `bson:"role" json:"role"`
	Bio       string             `bson:"bio" json:"bio"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SignupRequest represents the payload for creating an account
type SignupRequest struct {
	Name     string `json:"name" example:"Ada Lovelace"`
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"hunter22"`
	Photo    string `json:"photo,omitempty"`
}

// LoginRequest represents the payload for authenticating
type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"hunter22"`
}

// AuthResponse is returned on successful signup or login
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
