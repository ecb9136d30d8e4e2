package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/refind-dev/refind/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	r := setupRouter(t)

	user := signupUser(t, r, "alice")
	post := createPost(t, r, user.ID)

	assert.Equal(t, "Lost scarf", post.Title)
	assert.Equal(t, "Olin Library", post.Location)
	assert.Equal(t, user.ID, post.UserID)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreatePostUnknownUser(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/posts/77", map[string]string{
		"title":       "Lost scarf",
		"description": "Blue wool scarf",
		"category":    "clothing",
		"filename":    "scarf.jpg",
		"location":    "Olin Library",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "User not found", resp["error"])
}

func TestCreatePostMissingFields(t *testing.T) {
	r := setupRouter(t)

	user := signupUser(t, r, "bob")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d", user.ID), map[string]string{
		"title": "Lost scarf",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Body is missing fields", resp["error"])
}

func TestUpdatePostPartial(t *testing.T) {
	r := setupRouter(t)

	user := signupUser(t, r, "carol")
	post := createPost(t, r, user.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/update", post.ID), map[string]string{
		"title": "Found scarf",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated types.PostResponse
	decodeJSON(t, w, &updated)

	assert.Equal(t, "Found scarf", updated.Title)
	assert.Equal(t, post.Description, updated.Description)
	assert.Equal(t, post.Category, updated.Category)
	assert.Equal(t, post.Filename, updated.Filename)
}

func TestUpdatePostLocationImmutable(t *testing.T) {
	r := setupRouter(t)

	user := signupUser(t, r, "dave")
	post := createPost(t, r, user.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/update", post.ID), map[string]string{
		"title":    "Found scarf",
		"location": "Somewhere else",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated types.PostResponse
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Olin Library", updated.Location)
}

func TestUpdatePostNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/posts/404/update", map[string]string{"title": "x"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePostCascadesComments(t *testing.T) {
	r := setupRouter(t)

	user := signupUser(t, r, "erin")
	post := createPost(t, r, user.ID)
	comment := createComment(t, r, user.ID, post.ID, "is this still around?")

	w := doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deleted types.PostResponse
	decodeJSON(t, w, &deleted)
	assert.Equal(t, post.ID, deleted.ID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/posts/%d", post.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/comments/%d", comment.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListPosts(t *testing.T) {
	r := setupRouter(t)

	user := signupUser(t, r, "frank")
	createPost(t, r, user.ID)
	createPost(t, r, user.ID)

	w := doJSON(t, r, http.MethodGet, "/api/posts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []types.PostResponse
	decodeJSON(t, w, &posts)
	assert.Len(t, posts, 2)
}
