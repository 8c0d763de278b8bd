package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/xyz-asif/dashboard/internal/config"
	"github.com/xyz-asif/dashboard/internal/pkg/token"
	apperrors "github.com/xyz-asif/dashboard/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore is an in-memory UserStore for handler tests.
type memStore struct {
	users map[primitive.ObjectID]*User
}

func newMemStore() *memStore {
	return &memStore{users: make(map[primitive.ObjectID]*User)}
}

func (s *memStore) Create(_ context.Context, user *User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
		}
	}
	user.ID = primitive.NewObjectID()
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memStore) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindByID(_ context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	u, ok := s.users[oid]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *memStore) UpdateFields(_ context.Context, id string, fields bson.M) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	u, ok := s.users[oid]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			u.Name = value.(string)
		case "phone":
			u.Phone = value.(string)
		case "role":
			u.Role = value.(string)
		case "bio":
			u.Bio = value.(string)
		case "photo":
			u.Photo = value.(string)
		}
	}
	copied := *u
	return &copied, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		JWTExpireHours: 24,
		BcryptCost:     4, // keep tests fast
	}
}

func newAuthRouter(store UserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(store, testConfig())
	r := gin.New()
	r.POST("/auth/signup", handler.Signup)
	r.POST("/auth/login", handler.Login)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSignup_Success(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	w := postJSON(r, "/auth/signup", SignupRequest{Name: "A", Email: "a@x.com", Password: "p1secret"})
	require.Equal(t, 201, w.Code)

	var body struct {
		Data AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "a@x.com", body.Data.User.Email)
	require.NotEmpty(t, body.Data.Token)

	claims, err := token.Validate(body.Data.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, body.Data.User.ID.Hex(), claims.UserID)

	// The hash must never serialize
	require.NotContains(t, w.Body.String(), "password")
	require.Len(t, store.users, 1)
}

func TestSignup_MissingFields(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	w := postJSON(r, "/auth/signup", SignupRequest{Name: "A", Email: "a@x.com"})
	require.Equal(t, 400, w.Code)
	require.Empty(t, store.users)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	w := postJSON(r, "/auth/signup", SignupRequest{Name: "A", Email: "a@x.com", Password: "p1secret"})
	require.Equal(t, 201, w.Code)

	w = postJSON(r, "/auth/signup", SignupRequest{Name: "B", Email: "a@x.com", Password: "another1"})
	require.Equal(t, 409, w.Code)
	require.Len(t, store.users, 1)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	w := postJSON(r, "/auth/signup", SignupRequest{Name: "A", Email: "a@x.com", Password: "p1secret"})
	require.Equal(t, 201, w.Code)

	wrongPassword := postJSON(r, "/auth/login", LoginRequest{Email: "a@x.com", Password: "wrong-pass"})
	unknownEmail := postJSON(r, "/auth/login", LoginRequest{Email: "nobody@x.com", Password: "whatever"})

	require.Equal(t, 401, wrongPassword.Code)
	require.Equal(t, wrongPassword.Code, unknownEmail.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogin_Success(t *testing.T) {
	store := newMemStore()
	r := newAuthRouter(store)

	w := postJSON(r, "/auth/signup", SignupRequest{Name: "A", Email: "a@x.com", Password: "p1secret"})
	require.Equal(t, 201, w.Code)

	w = postJSON(r, "/auth/login", LoginRequest{Email: "a@x.com", Password: "p1secret"})
	require.Equal(t, 200, w.Code)

	var body struct {
		Data AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.Token)

	claims, err := token.Validate(body.Data.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", claims.Email)
}
