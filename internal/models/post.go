package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a community post stored in MongoDB
type Post struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        uint               `json:"user_id" bson:"user_id"`
	AuthorName    string             `json:"author_name" bson:"author_name"` // empty when anonymous
	Anonymous     bool               `json:"anonymous" bson:"anonymous"`
	Topic         string             `json:"topic" bson:"topic"` // anxiety, sleep, habits, general, ...
	Content       string             `json:"content" bson:"content"`
	LikesCount    int                `json:"likes_count" bson:"likes_count"`
	CommentsCount int                `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a community post
type CreatePostRequest struct {
	Content   string `json:"content" validate:"required,min=1,max=2000"`
	Topic     string `json:"topic,omitempty" validate:"omitempty,oneof=anxiety sleep habits mood general"`
	Anonymous bool   `json:"anonymous,omitempty"`
}

// UpdatePostRequest defines the request body for updating a community post
type UpdatePostRequest struct {
	Content string `json:"content,omitempty" validate:"omitempty,min=1,max=2000"`
	Topic   string `json:"topic,omitempty" validate:"omitempty,oneof=anxiety sleep habits mood general"`
}
