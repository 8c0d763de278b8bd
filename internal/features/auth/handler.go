package auth

import (
	"errors"
	"log"
	"time"

	"github.com/xyz-asif/dashboard/internal/config"
	"github.com/xyz-asif/dashboard/internal/pkg/response"
	"github.com/xyz-asif/dashboard/internal/pkg/token"
	apperrors "github.com/xyz-asif/dashboard/pkg/errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	store UserStore
	cfg   *config.Config
}

func NewHandler(store UserStore, cfg *config.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

func (h *Handler) tokenTTL() time.Duration {
	return time.Duration(h.cfg.JWTExpireHours) * time.Hour
}

// Signup godoc
// @Summary Register a new user
// @Description Create an account with name, email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := ValidateSignup(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	// Pre-check gives a friendly conflict; the unique index closes the race.
	existing, err := h.store.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Printf("signup: email lookup failed: %v", err)
		response.DatabaseError(c, "Failed to create user")
		return
	}
	if existing != nil {
		response.Conflict(c, "Email already registered", "EMAIL_TAKEN")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.cfg.BcryptCost)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	user := &User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Photo:    req.Photo,
	}

	if err := h.store.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			response.Conflict(c, "Email already registered", "EMAIL_TAKEN")
			return
		}
		log.Printf("signup: insert failed: %v", err)
		response.DatabaseError(c, "Failed to create user")
		return
	}

	// The user record is already persisted; a minting failure here is a 500
	// and the client retries via login.
	tok, err := token.Generate(user.ID.Hex(), user.Email, h.cfg.JWTSecret, h.tokenTTL())
	if err != nil {
		log.Printf("signup: token minting failed: %v", err)
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Created(c, AuthResponse{User: user, Token: tok})
}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	user, err := h.store.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		log.Printf("login: email lookup failed: %v", err)
		response.DatabaseError(c, "Failed to log in")
		return
	}

	// Unknown email and wrong password take the same exit so the response
	// never reveals whether the account exists.
	if user == nil {
		h.invalidCredentials(c)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		h.invalidCredentials(c)
		return
	}

	tok, err := token.Generate(user.ID.Hex(), user.Email, h.cfg.JWTSecret, h.tokenTTL())
	if err != nil {
		log.Printf("login: token minting failed: %v", err)
		response.InternalServerError(c, "Failed to generate token")
		return
	}

	response.Success(c, AuthResponse{User: user, Token: tok})
}

func (h *Handler) invalidCredentials(c *gin.Context) {
	response.Unauthorized(c, "Invalid email or password", "INVALID_CREDENTIALS")
}
