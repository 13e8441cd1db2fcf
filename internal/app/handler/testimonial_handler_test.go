package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/app/ds"
	"backend/internal/app/dto"
	"backend/internal/app/repository"

	"github.com/stretchr/testify/require"
)

func seedTestimonials(t *testing.T, store *repository.MemoryStore) {
	t.Helper()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	testimonials := []ds.Testimonial{
		{ClientName: "Sarah Johnson", TestimonialText: "Great work", Rating: 5, IsFeatured: true, IsActive: true, CreatedAt: base},
		{ClientName: "Michael Chen", TestimonialText: "Solid delivery", Rating: 4, IsFeatured: false, IsActive: true, CreatedAt: base.Add(time.Hour)},
		{ClientName: "David Wilson", TestimonialText: "Hidden review", Rating: 5, IsFeatured: true, IsActive: false, CreatedAt: base.Add(2 * time.Hour)},
		{ClientName: "Emily Rodriguez", TestimonialText: "Very happy", Rating: 5, IsFeatured: false, IsActive: true, CreatedAt: base.Add(3 * time.Hour)},
	}
	for i := range testimonials {
		require.NoError(t, store.CreateTestimonial(&testimonials[i]))
	}
}

func TestGetTestimonials_FeaturedFirstThenNewest(t *testing.T) {
	store := repository.NewMemoryStore()
	seedTestimonials(t, store)
	r, _ := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/testimonials", nil)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)

	var list dto.TestimonialListResponse
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &list))
	require.Equal(t, 3, list.Total)
	require.Equal(t, "Sarah Johnson", list.Testimonials[0].ClientName)
	require.Equal(t, "Emily Rodriguez", list.Testimonials[1].ClientName)
	require.Equal(t, "Michael Chen", list.Testimonials[2].ClientName)
}

func TestGetFeaturedTestimonials_OnlyActiveFeatured(t *testing.T) {
	store := repository.NewMemoryStore()
	seedTestimonials(t, store)
	r, _ := setupRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/testimonials/featured", nil)
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)

	var list dto.TestimonialListResponse
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &list))

	// Неактивный избранный отзыв скрыт
	require.Equal(t, 1, list.Total)
	require.Equal(t, "Sarah Johnson", list.Testimonials[0].ClientName)
}

func TestCreateTestimonial_Admin(t *testing.T) {
	store := repository.NewMemoryStore()
	r, authHandler := setupRouter(store)

	body := `{
		"client_name": "Lisa Thompson",
		"client_company": "Thompson & Co",
		"testimonial_text": "Excellent service",
		"rating": 5,
		"is_featured": true
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(authHandler))
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusCreated, rw.Code)

	var created dto.TestimonialResponse
	require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &created))
	require.Equal(t, "Lisa Thompson", created.ClientName)
	require.True(t, created.IsFeatured)
}

func TestCreateTestimonial_InvalidRating(t *testing.T) {
	store := repository.NewMemoryStore()
	r, authHandler := setupRouter(store)

	body := `{"client_name": "Lisa Thompson", "testimonial_text": "Excellent", "rating": 7}`
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(authHandler))
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusBadRequest, rw.Code)
}

func TestUpdateTestimonial_Deactivate(t *testing.T) {
	store := repository.NewMemoryStore()
	testimonial := ds.Testimonial{ClientName: "Sarah Johnson", TestimonialText: "Great work", Rating: 5, IsActive: true}
	require.NoError(t, store.CreateTestimonial(&testimonial))
	r, authHandler := setupRouter(store)

	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/api/testimonials/%d", testimonial.ID),
		bytes.NewBufferString(`{"is_active": false}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken(authHandler))
	rw := httptest.NewRecorder()
	r.ServeHTTP(rw, req)

	require.Equal(t, http.StatusOK, rw.Code)

	list, err := store.ListActiveTestimonials(false)
	require.NoError(t, err)
	require.Empty(t, list)
}
