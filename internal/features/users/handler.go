package users

import (
	"errors"
	"log"
	"strings"

	"github.com/xyz-asif/dashboard/internal/features/auth"
	"github.com/xyz-asif/dashboard/internal/pkg/images"
	"github.com/xyz-asif/dashboard/internal/pkg/response"
	apperrors "github.com/xyz-asif/dashboard/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	store auth.UserStore
}

func NewHandler(store auth.UserStore) *Handler {
	return &Handler{store: store}
}

// GetProfile godoc
// @Summary Get current user profile
// @Description Get the profile of the authenticated user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=auth.User}
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /user/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.store.FindByID(c.Request.Context(), userID)
	if err != nil {
		log.Printf("profile: lookup failed: %v", err)
		response.DatabaseError(c, "Failed to fetch profile")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, user)
}

// UpdateProfile godoc
// @Summary Update current user profile
// @Description Sparse update: only fields present in the multipart form are applied
// @Tags user
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param name formData string false "Display name"
// @Param phone formData string false "Phone number"
// @Param role formData string false "Role"
// @Param bio formData string false "Bio"
// @Param photo formData file false "Profile photo"
// @Success 200 {object} response.SuccessResponse{data=auth.User}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /user/profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userID")

	// Empty form values count as absent: existing stored values stay untouched.
	fields := bson.M{}
	for _, key := range []string{"name", "phone", "role", "bio"} {
		if value := strings.TrimSpace(c.PostForm(key)); value != "" {
			fields[key] = value
		}
	}

	if header, err := c.FormFile("photo"); err == nil {
		encoded, err := images.EncodeHeader(header)
		if err != nil {
			response.BadRequest(c, err.Error(), "INVALID_PHOTO")
			return
		}
		fields["photo"] = encoded
	}

	if len(fields) == 0 {
		response.BadRequest(c, "No fields to update")
		return
	}

	user, err := h.store.UpdateFields(c.Request.Context(), userID, fields)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		log.Printf("profile: update failed: %v", err)
		response.DatabaseError(c, "Failed to update profile")
		return
	}

	response.Success(c, user)
}
