package tasks

import (
	"errors"
	"log"
	"strconv"

	"github.com/xyz-asif/dashboard/internal/pkg/response"
	apperrors "github.com/xyz-asif/dashboard/pkg/errors"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store TaskStore
}

func NewHandler(store TaskStore) *Handler {
	return &Handler{store: store}
}

// Create godoc
// @Summary Create a task
// @Description Create a task for the authenticated user
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} response.SuccessResponse{data=Task}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /tasks [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := ValidateCreateTask(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	task := &Task{
		UserID:      userID,
		Title:       req.Title,
		Category:    req.Category,
		Completed:   req.Completed,
		Description: req.Description,
		SetupDate:   req.SetupDate,
	}

	if err := h.store.Create(c.Request.Context(), task); err != nil {
		log.Printf("tasks: create failed: %v", err)
		response.DatabaseError(c, "Failed to create task")
		return
	}

	response.Created(c, task)
}

// List godoc
// @Summary List tasks
// @Description Tasks of the authenticated user, newest first
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param completed query bool false "Filter by completion status"
// @Param limit query int false "Maximum tasks to return (default 50, max 100)"
// @Success 200 {object} response.PaginatedResponse{data=[]Task}
// @Failure 401 {object} response.ErrorResponse
// @Router /tasks [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	var completed *bool
	if completedStr := c.Query("completed"); completedStr != "" {
		if val, err := strconv.ParseBool(completedStr); err == nil {
			completed = &val
		}
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	tasks, err := h.store.List(c.Request.Context(), userID, completed, limit)
	if err != nil {
		log.Printf("tasks: list failed: %v", err)
		response.DatabaseError(c, "Failed to fetch tasks")
		return
	}

	total, err := h.store.CountByUser(c.Request.Context(), userID)
	if err != nil {
		log.Printf("tasks: count failed: %v", err)
		response.DatabaseError(c, "Failed to fetch tasks")
		return
	}

	response.Paginated(c, tasks, total, limit)
}

// Update godoc
// @Summary Update a task
// @Description Partial update of a task; only the owner may update
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to update"
// @Success 200 {object} response.SuccessResponse{data=Task}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	update, err := BuildUpdate(&req)
	if err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	if err := h.store.Update(c.Request.Context(), taskID, userID, update); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		log.Printf("tasks: update failed: %v", err)
		response.DatabaseError(c, "Failed to update task")
		return
	}

	task, err := h.store.GetByID(c.Request.Context(), taskID, userID)
	if err != nil {
		log.Printf("tasks: refetch after update failed: %v", err)
		response.InternalServerError(c, "Failed to retrieve updated task")
		return
	}

	response.Success(c, task)
}

// Delete godoc
// @Summary Delete a task
// @Description Delete a task; only the owner may delete
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Task ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), taskID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Task not found")
			return
		}
		log.Printf("tasks: delete failed: %v", err)
		response.DatabaseError(c, "Failed to delete task")
		return
	}

	response.Success(c, map[string]string{"message": "Task deleted successfully"})
}
