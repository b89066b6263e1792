package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Manish9250/calorie-tracker-app/routes"
	"github.com/Manish9250/calorie-tracker-app/services"
)

func TestServeHome(t *testing.T) {
	r, _ := newTestServer(t, &fakeGenerator{})

	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Calorie Tracker")
}

func TestServeHomeMissingAsset(t *testing.T) {
	_, db := newTestServer(t, &fakeGenerator{})
	r := routes.SetupRouter(db, services.NewNutritionAI(&fakeGenerator{}), t.TempDir())

	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
