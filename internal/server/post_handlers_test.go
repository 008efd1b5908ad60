package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"yatube/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	s, m := newTestServer()

	app := fiber.New()
	app.Use(authAs(1))
	app.Post("/posts", s.CreatePost)

	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "Success",
			body: map[string]any{"text": "Hello world"},
			mockSetup: func() {
				m.posts.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				m.posts.On("GetByID", mock.Anything, mock.Anything).
					Return(&models.Post{ID: 1, Text: "Hello world", AuthorID: 1}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing text",
			body:           map[string]any{"text": ""},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Unknown group",
			body: map[string]any{"text": "Hello", "group_id": 42},
			mockSetup: func() {
				m.groups.On("GetByID", mock.Anything, uint(42)).
					Return(nil, models.NewNotFoundError("Group", 42)).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
	m.posts.AssertExpectations(t)
	m.groups.AssertExpectations(t)
}

func TestGetPostsHomeListing(t *testing.T) {
	s, m := newTestServer()

	app := fiber.New()
	app.Get("/posts", s.GetPosts)

	// No Redis in tests; the cached path degrades to fetching every time
	m.posts.On("List", mock.Anything, 10, 0).
		Return([]*models.Post{{ID: 2}, {ID: 1}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var posts []models.Post
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	require.Len(t, posts, 2)
	assert.Equal(t, uint(2), posts[0].ID)
	m.posts.AssertExpectations(t)
}

func TestUpdatePostForbiddenForNonAuthor(t *testing.T) {
	s, m := newTestServer()

	app := fiber.New()
	app.Use(authAs(2))
	app.Put("/posts/:id", s.UpdatePost)

	m.posts.On("GetByID", mock.Anything, uint(5)).
		Return(&models.Post{ID: 5, AuthorID: 1, Text: "original"}, nil).Once()

	body, _ := json.Marshal(map[string]any{"text": "hijack"})
	req := httptest.NewRequest(http.MethodPut, "/posts/5", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	m.posts.AssertExpectations(t)
}

func TestGetPostInvalidID(t *testing.T) {
	s, _ := newTestServer()

	app := fiber.New()
	app.Get("/posts/:id", s.GetPost)

	for _, raw := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/posts/"+raw, nil)
		resp, _ := app.Test(req)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "id %q", raw)
	}
}

func TestDeletePost(t *testing.T) {
	s, m := newTestServer()

	app := fiber.New()
	app.Use(authAs(1))
	app.Delete("/posts/:id", s.DeletePost)

	m.posts.On("GetByID", mock.Anything, uint(7)).
		Return(&models.Post{ID: 7, AuthorID: 1}, nil).Once()
	m.posts.On("Delete", mock.Anything, uint(7)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/posts/7", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	m.posts.AssertExpectations(t)
}

func TestGetFeedEmptyIsOK(t *testing.T) {
	s, m := newTestServer()

	app := fiber.New()
	app.Use(authAs(3))
	app.Get("/feed", s.GetFeed)

	m.posts.On("Feed", mock.Anything, uint(3), 10, 0).
		Return([]*models.Post{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
	m.posts.AssertExpectations(t)
}

func TestGetFeedPagination(t *testing.T) {
	s, m := newTestServer()

	app := fiber.New()
	app.Use(authAs(3))
	app.Get("/feed", s.GetFeed)

	m.posts.On("Feed", mock.Anything, uint(3), 20, 40).
		Return([]*models.Post{{ID: 1}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/feed?limit=20&offset=40", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	m.posts.AssertExpectations(t)
}

func TestGetUserPosts(t *testing.T) {
	s, m := newTestServer()

	app := fiber.New()
	app.Get("/users/:username/posts", s.GetUserPosts)

	m.users.On("GetByUsername", mock.Anything, "leo").
		Return(&models.User{ID: 4, Username: "leo"}, nil).Once()
	m.posts.On("GetByAuthorID", mock.Anything, uint(4), 10, 0).
		Return([]*models.Post{{ID: 9, AuthorID: 4}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/users/leo/posts", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	m.users.AssertExpectations(t)
	m.posts.AssertExpectations(t)
}
