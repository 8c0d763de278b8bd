package posts

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a feed entry owned by exactly one user. Image is a base64-encoded
// blob stored inline with the document.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Content   string             `bson:"content" json:"content"`
	Image     string             `bson:"image" json:"image"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Author is the post owner's public display fields, joined in at read time.
type Author struct {
	Name  string `bson:"name" json:"name"`
	Photo string `bson:"photo" json:"photo"`
}

// FeedPost is a Post annotated for rendering: the author's display fields and
// whether the requesting user owns it. IsOwner is computed per request and
// never persisted.
type FeedPost struct {
	Post    `bson:",inline"`
	Author  Author `bson:"author" json:"author"`
	IsOwner bool   `bson:"-" json:"isOwner"`
}

// UpdatePostRequest represents the payload for editing a post. Content is the
// only mutable field.
type UpdatePostRequest struct {
	Content string `json:"content" example:"Updated thoughts"`
}
