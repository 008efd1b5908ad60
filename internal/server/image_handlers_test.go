package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/images", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadImage(t *testing.T) {
	s, _ := newTestServer()
	s.config.MediaDir = t.TempDir()

	app := fiber.New()
	app.Use(authAs(1))
	app.Post("/images", s.UploadImage)

	resp, err := app.Test(uploadRequest(t, "photo.png", []byte("png bytes")))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploaded ImageUploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&uploaded))
	require.True(t, strings.HasPrefix(uploaded.ImageURL, "/media/"), "got %q", uploaded.ImageURL)
	assert.True(t, strings.HasSuffix(uploaded.ImageURL, ".png"))

	// The file lands on disk under a server-chosen name
	saved, err := os.ReadFile(filepath.Join(s.config.MediaDir, filepath.Base(uploaded.ImageURL)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), saved)
}

func TestUploadImageRejectsUnsupportedType(t *testing.T) {
	s, _ := newTestServer()
	s.config.MediaDir = t.TempDir()

	app := fiber.New()
	app.Use(authAs(1))
	app.Post("/images", s.UploadImage)

	resp, err := app.Test(uploadRequest(t, "script.sh", []byte("#!/bin/sh")))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadImageMissingFile(t *testing.T) {
	s, _ := newTestServer()
	s.config.MediaDir = t.TempDir()

	app := fiber.New()
	app.Use(authAs(1))
	app.Post("/images", s.UploadImage)

	req := httptest.NewRequest(http.MethodPost, "/images", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
