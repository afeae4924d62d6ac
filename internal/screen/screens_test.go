// ABOUTME: End-to-end tests for the concrete screens against a fake backend
// ABOUTME: Exercises the lost-and-found resolved exclusion and user date filters

package screen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorvia/motorvia-console/internal/api"
	"github.com/motorvia/motorvia-console/internal/listview"
	"github.com/motorvia/motorvia-console/internal/model"
)

func jsonBackend(t *testing.T, path string, payload any) *api.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return api.New(srv.URL, "test-token", 0)
}

func lostFoundFixture() []model.LostFoundItem {
	// 14 reports: 5 open lost, 6 open found, 3 resolved found.
	items := make([]model.LostFoundItem, 0, 14)
	for i := 0; i < 5; i++ {
		items = append(items, model.LostFoundItem{
			ID:     fmt.Sprintf("lost-%d", i),
			Type:   model.LostFoundTypeLost,
			Status: model.LostFoundStatusActive,
			Title:  fmt.Sprintf("lost bike %d", i),
		})
	}
	for i := 0; i < 6; i++ {
		items = append(items, model.LostFoundItem{
			ID:     fmt.Sprintf("found-%d", i),
			Type:   model.LostFoundTypeFound,
			Status: model.LostFoundStatusActive,
			Title:  fmt.Sprintf("found scooter %d", i),
		})
	}
	for i := 0; i < 3; i++ {
		items = append(items, model.LostFoundItem{
			ID:     fmt.Sprintf("resolved-%d", i),
			Type:   model.LostFoundTypeFound,
			Status: model.LostFoundStatusResolved,
			Title:  fmt.Sprintf("returned van %d", i),
		})
	}
	return items
}

func TestLostFound_TypeFilterExcludesResolved(t *testing.T) {
	client := jsonBackend(t, "/api/lost-and-found/admin/all", lostFoundFixture())
	s := LostFound(client, true, "", 6)
	require.NoError(t, s.Load(context.Background()))

	require.Len(t, s.Visible().Visible, 14)

	s.SetFilter("type", model.LostFoundTypeLost)
	r := s.Visible()
	require.Len(t, r.Visible, 5)
	for _, it := range r.Visible {
		assert.Equal(t, model.LostFoundTypeLost, it.Type)
		assert.NotEqual(t, model.LostFoundStatusResolved, it.Status)
	}
	assert.Equal(t, 1, r.TotalPages)
	assert.Len(t, r.PageItems, 5)
}

func TestLostFound_ExplicitStatusFilterShowsResolved(t *testing.T) {
	client := jsonBackend(t, "/api/lost-and-found/admin/all", lostFoundFixture())
	s := LostFound(client, true, "", 6)
	require.NoError(t, s.Load(context.Background()))

	// Asking for resolved reports overrides the open-reports default.
	s.SetFilter("type", model.LostFoundTypeFound)
	s.SetFilter("status", model.LostFoundStatusResolved)
	r := s.Visible()
	require.Len(t, r.Visible, 3)
	for _, it := range r.Visible {
		assert.Equal(t, model.LostFoundStatusResolved, it.Status)
	}

	// Type filter alone hides the resolved three again.
	s.SetFilter("status", listview.SentinelAll)
	assert.Len(t, s.Visible().Visible, 6)
}

func TestLostFound_UserScopedFetch(t *testing.T) {
	client := jsonBackend(t, "/api/lost-and-found/all2/u-7", lostFoundFixture()[:2])
	s := LostFound(client, false, "u-7", 6)
	require.NoError(t, s.Load(context.Background()))
	assert.Len(t, s.Visible().Visible, 2)
}

func TestUsers_LastMonthFilterAndPaging(t *testing.T) {
	now := time.Now()
	boundary := now.AddDate(0, -1, 0)

	// 23 accounts inside the window, one of them exactly on the boundary
	// instant, plus 4 older accounts the filter must drop.
	users := make([]model.User, 0, 27)
	for i := 0; i < 22; i++ {
		users = append(users, model.User{
			ID:        fmt.Sprintf("u-%d", i),
			Name:      fmt.Sprintf("User %d", i),
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	users = append(users, model.User{ID: "u-boundary", Name: "Boundary", CreatedAt: boundary})
	for i := 0; i < 4; i++ {
		users = append(users, model.User{
			ID:        fmt.Sprintf("old-%d", i),
			Name:      fmt.Sprintf("Old %d", i),
			CreatedAt: boundary.AddDate(0, 0, -1-i),
		})
	}

	client := jsonBackend(t, "/users/all", users)
	s := Users(client, 10)
	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Visible().Visible, 27)

	s.SetDateFilter("created", listview.LastMonth(now))
	r := s.Visible()

	assert.Len(t, r.Visible, 23)
	assert.Equal(t, 3, r.TotalPages)
	assert.Equal(t, 1, r.Page)
	assert.Len(t, r.PageItems, 10)

	found := false
	for _, u := range r.Visible {
		if u.ID == "u-boundary" {
			found = true
		}
	}
	assert.True(t, found, "boundary account should pass an inclusive window")

	s.SetPage(3)
	assert.Len(t, s.Visible().PageItems, 3)

	s.ClearDateFilter("created")
	assert.Len(t, s.Visible().Visible, 27)
}

func TestVehicles_SearchFilterSortPipeline(t *testing.T) {
	now := time.Now()
	vehicles := []model.Vehicle{
		{ID: "v1", Make: "Toyota", Model: "Corolla", Status: "active", Price: 9000, CreatedAt: now},
		{ID: "v2", Make: "Toyota", Model: "Camry", Status: "sold", Price: 12000, CreatedAt: now.Add(-time.Hour)},
		{ID: "v3", Make: "Honda", Model: "Civic", Status: "active", Price: 7000, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "v4", Make: "Toyota", Model: "Hilux", Status: "active", Price: 15000, CreatedAt: now.Add(-3 * time.Hour)},
	}
	client := jsonBackend(t, "/vehicles/all", vehicles)
	s := Vehicles(client, 8)
	require.NoError(t, s.Load(context.Background()))

	s.SetSearch("toyota")
	s.SetFilter("status", "active")
	s.SetSort(listview.SortPriceAsc)

	r := s.Visible()
	require.Len(t, r.Visible, 2)
	assert.Equal(t, "v1", r.Visible[0].ID)
	assert.Equal(t, "v4", r.Visible[1].ID)
}
