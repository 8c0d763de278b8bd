package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	apperrors "github.com/xyz-asif/dashboard/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore mirrors the repository's owner-scoping in memory.
type memStore struct {
	tasks map[primitive.ObjectID]*Task
}

func newMemStore() *memStore {
	return &memStore{tasks: make(map[primitive.ObjectID]*Task)}
}

func (s *memStore) add(userID, title string) primitive.ObjectID {
	task := &Task{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Category:  defaultCategory,
		CreatedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	return task.ID
}

func (s *memStore) Create(_ context.Context, task *Task) error {
	task.ID = primitive.NewObjectID()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	stored := *task
	s.tasks[task.ID] = &stored
	return nil
}

func (s *memStore) List(_ context.Context, userID string, completed *bool, limit int) ([]Task, error) {
	tasks := []Task{}
	for _, task := range s.tasks {
		if task.UserID != userID {
			continue
		}
		if completed != nil && task.Completed != *completed {
			continue
		}
		tasks = append(tasks, *task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	if limit > 0 && len(tasks) > limit {
		tasks = tasks[:limit]
	}
	return tasks, nil
}

func (s *memStore) lookup(id, userID string) (*Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	task, ok := s.tasks[oid]
	if !ok || task.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return task, nil
}

func (s *memStore) GetByID(_ context.Context, id, userID string) (*Task, error) {
	task, err := s.lookup(id, userID)
	if err != nil {
		return nil, err
	}
	copied := *task
	return &copied, nil
}

func (s *memStore) Update(_ context.Context, id, userID string, update bson.M) error {
	task, err := s.lookup(id, userID)
	if err != nil {
		return err
	}
	for key, value := range update {
		switch key {
		case "title":
			task.Title = value.(string)
		case "category":
			task.Category = value.(string)
		case "completed":
			task.Completed = value.(bool)
		case "description":
			task.Description = value.(string)
		case "setupDate":
			task.SetupDate = value.(string)
		case "userId":
			// The allow-list in BuildUpdate must make this unreachable.
			panic("update attempted to change task ownership")
		}
	}
	task.UpdatedAt = time.Now()
	return nil
}

func (s *memStore) Delete(_ context.Context, id, userID string) error {
	task, err := s.lookup(id, userID)
	if err != nil {
		return err
	}
	delete(s.tasks, task.ID)
	return nil
}

func (s *memStore) CountByUser(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, task := range s.tasks {
		if task.UserID == userID {
			count++
		}
	}
	return count, nil
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newTasksRouter(store TaskStore, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(store)
	r := gin.New()
	r.GET("/tasks", asUser(userID), handler.List)
	r.POST("/tasks", asUser(userID), handler.Create)
	r.PUT("/tasks/:id", asUser(userID), handler.Update)
	r.DELETE("/tasks/:id", asUser(userID), handler.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateTask_DefaultsCategory(t *testing.T) {
	store := newMemStore()
	r := newTasksRouter(store, "u1")

	w := doJSON(r, "POST", "/tasks", CreateTaskRequest{Title: "Buy milk"})
	require.Equal(t, 201, w.Code)

	var body struct {
		Data Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "General", body.Data.Category)
	require.Equal(t, "u1", body.Data.UserID)
	require.False(t, body.Data.Completed)
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	store := newMemStore()
	r := newTasksRouter(store, "u1")

	w := doJSON(r, "POST", "/tasks", CreateTaskRequest{Title: "   ", Category: "Work"})
	require.Equal(t, 400, w.Code)

	count, _ := store.CountByUser(context.Background(), "u1")
	require.Zero(t, count)
}

func TestListTasks_OwnerScoped(t *testing.T) {
	store := newMemStore()
	store.add("u1", "mine")
	store.add("u2", "not mine")

	r := newTasksRouter(store, "u1")
	w := doJSON(r, "GET", "/tasks", nil)
	require.Equal(t, 200, w.Code)

	var body struct {
		Data  []Task `json:"data"`
		Total int64  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "mine", body.Data[0].Title)
	require.Equal(t, int64(1), body.Total)
}

func TestUpdateTask_ByNonOwnerLooksLikeMissing(t *testing.T) {
	store := newMemStore()
	taskID := store.add("u1", "original")

	r := newTasksRouter(store, "u2")

	hijack := doJSON(r, "PUT", "/tasks/"+taskID.Hex(), UpdateTaskRequest{Title: "hijacked"})
	missing := doJSON(r, "PUT", "/tasks/"+primitive.NewObjectID().Hex(), UpdateTaskRequest{Title: "hijacked"})

	require.Equal(t, 404, hijack.Code)
	require.Equal(t, missing.Body.String(), hijack.Body.String())
	require.Equal(t, "original", store.tasks[taskID].Title)
}

func TestUpdateTask_Partial(t *testing.T) {
	store := newMemStore()
	taskID := store.add("u1", "original")
	store.tasks[taskID].Description = "keep me"

	r := newTasksRouter(store, "u1")
	done := true
	w := doJSON(r, "PUT", "/tasks/"+taskID.Hex(), UpdateTaskRequest{Completed: &done})
	require.Equal(t, 200, w.Code)

	require.True(t, store.tasks[taskID].Completed)
	require.Equal(t, "original", store.tasks[taskID].Title)
	require.Equal(t, "keep me", store.tasks[taskID].Description)
}

func TestUpdateTask_CannotChangeOwner(t *testing.T) {
	store := newMemStore()
	taskID := store.add("u1", "original")

	r := newTasksRouter(store, "u1")

	// Fields outside the allow-list are dropped, not applied
	payload := map[string]interface{}{"userId": "u2", "completed": true}
	w := doJSON(r, "PUT", "/tasks/"+taskID.Hex(), payload)
	require.Equal(t, 200, w.Code)
	require.Equal(t, "u1", store.tasks[taskID].UserID)
	require.True(t, store.tasks[taskID].Completed)
}

func TestUpdateTask_EmptyBody(t *testing.T) {
	store := newMemStore()
	taskID := store.add("u1", "original")

	r := newTasksRouter(store, "u1")
	w := doJSON(r, "PUT", "/tasks/"+taskID.Hex(), map[string]interface{}{})
	require.Equal(t, 400, w.Code)
}

func TestDeleteTask_OwnerScoped(t *testing.T) {
	store := newMemStore()
	taskID := store.add("u1", "mine")

	r := newTasksRouter(store, "u2")
	w := doJSON(r, "DELETE", "/tasks/"+taskID.Hex(), nil)
	require.Equal(t, 404, w.Code)
	require.Len(t, store.tasks, 1)

	r = newTasksRouter(store, "u1")
	w = doJSON(r, "DELETE", "/tasks/"+taskID.Hex(), nil)
	require.Equal(t, 200, w.Code)
	require.Empty(t, store.tasks)
}

func TestListTasks_CompletedFilter(t *testing.T) {
	store := newMemStore()
	doneID := store.add("u1", "done")
	store.tasks[doneID].Completed = true
	store.add("u1", "pending")

	r := newTasksRouter(store, "u1")
	w := doJSON(r, "GET", "/tasks?completed=true", nil)
	require.Equal(t, 200, w.Code)

	var body struct {
		Data []Task `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "done", body.Data[0].Title)
}
