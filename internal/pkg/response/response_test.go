package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func record(t *testing.T, fn func(c *gin.Context)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestSuccess(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		Success(c, map[string]string{"hello": "world"})
	})

	require.Equal(t, 200, w.Code)
	var body SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "success", body.Status)
	require.Equal(t, map[string]interface{}{"hello": "world"}, body.Data)
}

func TestCreated(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		Created(c, "ok")
	})
	require.Equal(t, 201, w.Code)
}

func TestPaginated(t *testing.T) {
	w := record(t, func(c *gin.Context) {
		Paginated(c, []int{1, 2, 3}, 25, 50)
	})

	require.Equal(t, 200, w.Code)
	var body PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, int64(25), body.Total)
	require.Equal(t, 50, body.Limit)
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name   string
		fn     func(c *gin.Context)
		status int
		code   string
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "nope", "NOPE") }, 400, "NOPE"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "nope") }, 401, ""},
		{"not found", func(c *gin.Context) { NotFound(c, "nope") }, 404, ""},
		{"conflict", func(c *gin.Context) { Conflict(c, "nope") }, 409, ""},
		{"internal", func(c *gin.Context) { InternalServerError(c, "nope") }, 500, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := record(t, tc.fn)
			require.Equal(t, tc.status, w.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, "nope", body.Error)
			require.Equal(t, tc.code, body.Code)
		})
	}
}
