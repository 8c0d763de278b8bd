package tasks

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ValidateCreateTask checks and normalizes a task creation payload.
func ValidateCreateTask(req *CreateTaskRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.TrimSpace(req.Category)

	if req.Title == "" {
		return errors.New("title is required")
	}

	if req.Category == "" {
		req.Category = defaultCategory
	}

	return nil
}

// BuildUpdate turns an update request into a $set document containing only
// the fields the caller provided. The allow-list is deliberate: a request
// body can never touch userId or any other undeclared field.
func BuildUpdate(req *UpdateTaskRequest) (bson.M, error) {
	update := bson.M{}

	if title := strings.TrimSpace(req.Title); title != "" {
		update["title"] = title
	} else if req.Title != "" {
		return nil, errors.New("title cannot be blank")
	}
	if req.Category != "" {
		update["category"] = strings.TrimSpace(req.Category)
	}
	if req.Completed != nil {
		update["completed"] = *req.Completed
	}
	if req.Description != "" {
		update["description"] = req.Description
	}
	if req.SetupDate != "" {
		update["setupDate"] = req.SetupDate
	}

	if len(update) == 0 {
		return nil, errors.New("no fields to update")
	}

	return update, nil
}
