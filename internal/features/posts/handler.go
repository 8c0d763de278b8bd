package posts

import (
	"errors"
	"log"
	"strconv"

	"github.com/xyz-asif/dashboard/internal/pkg/images"
	"github.com/xyz-asif/dashboard/internal/pkg/response"
	apperrors "github.com/xyz-asif/dashboard/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	store PostStore
}

func NewHandler(store PostStore) *Handler {
	return &Handler{store: store}
}

// Create godoc
// @Summary Create a post
// @Description Create a post with text content and an optional image
// @Tags posts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param content formData string true "Post content"
// @Param image formData file false "Image attachment"
// @Success 201 {object} response.SuccessResponse{data=Post}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /posts [post]
func (h *Handler) Create(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	content, err := ValidateContent(c.PostForm("content"))
	if err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	image := ""
	if header, err := c.FormFile("image"); err == nil {
		image, err = images.EncodeHeader(header)
		if err != nil {
			response.BadRequest(c, err.Error(), "INVALID_IMAGE")
			return
		}
	}

	post := &Post{
		UserID:  owner,
		Content: content,
		Image:   image,
	}

	if err := h.store.Create(c.Request.Context(), post); err != nil {
		log.Printf("posts: create failed: %v", err)
		response.DatabaseError(c, "Failed to create post")
		return
	}

	response.Created(c, post)
}

// Feed godoc
// @Summary Get the global feed
// @Description All posts, newest first, annotated with author and isOwner
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum posts to return (default 50, max 100)"
// @Success 200 {object} response.PaginatedResponse{data=[]FeedPost}
// @Failure 401 {object} response.ErrorResponse
// @Router /posts [get]
func (h *Handler) Feed(c *gin.Context) {
	userID := c.GetString("userID")

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	feed, err := h.store.Feed(c.Request.Context(), limit)
	if err != nil {
		log.Printf("posts: feed query failed: %v", err)
		response.DatabaseError(c, "Failed to fetch posts")
		return
	}

	annotateOwnership(feed, userID)

	total, err := h.store.Count(c.Request.Context())
	if err != nil {
		log.Printf("posts: count failed: %v", err)
		response.DatabaseError(c, "Failed to fetch posts")
		return
	}

	response.Paginated(c, feed, total, limit)
}

// ByUser godoc
// @Summary Get posts by user
// @Description All posts authored by the given user, newest first
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} response.SuccessResponse{data=[]FeedPost}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /posts/user/{userId} [get]
func (h *Handler) ByUser(c *gin.Context) {
	userID := c.GetString("userID")

	target, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	feed, err := h.store.ByUser(c.Request.Context(), target)
	if err != nil {
		log.Printf("posts: by-user query failed: %v", err)
		response.DatabaseError(c, "Failed to fetch posts")
		return
	}

	annotateOwnership(feed, userID)

	response.Success(c, feed)
}

// Update godoc
// @Summary Edit a post
// @Description Update a post's content; only the owner may edit
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body UpdatePostRequest true "New content"
// @Success 200 {object} response.SuccessResponse{data=Post}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	content, err := ValidateContent(req.Content)
	if err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	if err := h.store.UpdateContent(c.Request.Context(), postID, userID, content); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		log.Printf("posts: update failed: %v", err)
		response.DatabaseError(c, "Failed to update post")
		return
	}

	post, err := h.store.GetByID(c.Request.Context(), postID, userID)
	if err != nil {
		log.Printf("posts: refetch after update failed: %v", err)
		response.InternalServerError(c, "Failed to retrieve updated post")
		return
	}

	response.Success(c, post)
}

// Delete godoc
// @Summary Delete a post
// @Description Delete a post; only the owner may delete
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /posts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	postID := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), postID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		log.Printf("posts: delete failed: %v", err)
		response.DatabaseError(c, "Failed to delete post")
		return
	}

	response.Success(c, map[string]string{"message": "Post deleted successfully"})
}

// annotateOwnership marks the posts the requesting user owns so the client
// can render edit/delete actions.
func annotateOwnership(feed []FeedPost, userID string) {
	for i := range feed {
		feed[i].IsOwner = feed[i].UserID.Hex() == userID
	}
}

func ownerID(c *gin.Context) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(c.GetString("userID"))
	if err != nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return primitive.NilObjectID, false
	}
	return oid, true
}
