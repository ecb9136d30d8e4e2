package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/refind-dev/refind/db"
	"github.com/refind-dev/refind/internal/router"
	"github.com/refind-dev/refind/internal/types"
	"github.com/stretchr/testify/require"
)

// setupRouter points the global DB at a fresh in-memory sqlite store
// and returns a router serving the full API. Tests sharing db.DB must
// not run in parallel.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	require.NoError(t, db.ConnectDatabase(dsn))
	require.NoError(t, db.MigrateDatabase())

	return router.NewRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func signupUser(t *testing.T, r *gin.Engine, username string) types.UserSummary {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/signup", map[string]string{
		"name":     "Test " + username,
		"email":    username + "@example.com",
		"username": username,
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var user types.UserSummary
	decodeJSON(t, w, &user)

	return user
}

func createPost(t *testing.T, r *gin.Engine, userID uint) types.PostResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d", userID), map[string]string{
		"title":       "Lost scarf",
		"description": "Blue wool scarf",
		"category":    "clothing",
		"filename":    "scarf.jpg",
		"location":    "Olin Library",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var post types.PostResponse
	decodeJSON(t, w, &post)

	return post
}

func createComment(t *testing.T, r *gin.Engine, userID, postID uint, body string) types.CommentResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/comments/%d/%d", userID, postID), map[string]string{
		"comment": body,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var comment types.CommentResponse
	decodeJSON(t, w, &comment)

	return comment
}

func uploadImage(t *testing.T, r *gin.Engine, filename, mimeType string, content []byte) types.ImageResponse {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pic"; filename=%q`, filename))
	header.Set("Content-Type", mimeType)

	part, err := mw.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var image types.ImageResponse
	decodeJSON(t, w, &image)

	return image
}
