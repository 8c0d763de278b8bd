package tasks

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultCategory = "General"

// Task is a to-do item scoped to one user.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title" example:"Buy groceries"`
	Category    string             `bson:"category" json:"category" example:"General"`
	Completed   bool               `bson:"completed" json:"completed"`
	Description string             `bson:"description" json:"description"`
	SetupDate   string             `bson:"setupDate" json:"setupDate" example:"2024-06-01"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateTaskRequest represents task creation data
type CreateTaskRequest struct {
	Title       string `json:"title" example:"Buy groceries"`
	Category    string `json:"category" example:"Work"`
	Completed   bool   `json:"completed"`
	Description string `json:"description"`
	SetupDate   string `json:"setupDate" example:"2024-06-01"`
}

// UpdateTaskRequest represents a partial task update. Only the declared
// fields are mutable; anything else in the body is ignored.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Completed   *bool  `json:"completed"`
	Description string `json:"description"`
	SetupDate   string `json:"setupDate"`
}
