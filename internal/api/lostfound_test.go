// ABOUTME: Tests for lost-and-found operations: scoped reads, resolve, multipart create
// ABOUTME: Verifies route paths and the date field's RFC3339 form encoding

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AdminListLostFound_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lost-and-found/admin/all", r.URL.Path)
		w.Write([]byte(`[{"id":"lf1","type":"lost","status":"active","title":"Lost key fob"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	items, err := c.AdminListLostFound(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Lost key fob", items[0].Title)
}

func TestClient_ListUserLostFound_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lost-and-found/all2/u7", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	_, err := c.ListUserLostFound(context.Background(), "u7")
	require.NoError(t, err)
}

func TestClient_ResolveLostFound(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	require.NoError(t, c.ResolveLostFound(context.Background(), "lf3"))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/lost-and-found/resolve/lf3", gotPath)
}

func TestClient_DeleteLostFound(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	require.NoError(t, c.DeleteLostFound(context.Background(), "lf3"))
	assert.Equal(t, "/api/lost-and-found/lf3", gotPath)
}

func TestClient_CreateLostFound_MultipartWithDate(t *testing.T) {
	reported := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lost-and-found", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "lost", r.FormValue("type"))
		assert.Equal(t, "Lost plate", r.FormValue("title"))
		assert.Equal(t, reported.Format(time.RFC3339), r.FormValue("date"))
		assert.Len(t, r.MultipartForm.File[imagesFieldName], 1)

		w.Write([]byte(`{"id":"lf-new","type":"lost","status":"active"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", time.Second)
	form := &LostFoundForm{
		Type:     "lost",
		Title:    "Lost plate",
		Location: "Central garage",
		Date:     reported,
	}
	images := []Upload{{Filename: "plate.jpg", Reader: strings.NewReader("jpeg")}}

	created, err := c.CreateLostFound(context.Background(), form, images)

	require.NoError(t, err)
	assert.Equal(t, "lf-new", created.ID)
	assert.Equal(t, "active", created.Status)
}
