package boosts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/schappie/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("https://example.com/boosts.json")

	assert.NotNil(t, client)
	assert.Equal(t, "https://example.com/boosts.json", client.url)
	assert.NotNil(t, client.httpClient)
}

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Schappie/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]float64{
			"melk": {"dairy": 0.9, "drinks": 0.2},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	table, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, 0.9, table["melk"][domain.CategoryDairy])
	assert.Equal(t, 0.2, table["melk"][domain.CategoryDrinks])
}

func TestFetch_SanitizesDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]float64{
			"melk":  {"dairy": 1.7, "zuivelafdeling": 0.5},
			"brood": {"verkeerd": 0.5},
			"kip":   {"meat_fish_veg": -0.3},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	table, err := client.Fetch(context.Background())

	require.NoError(t, err)

	assert.Equal(t, 1.0, table["melk"][domain.CategoryDairy], "weight clamped to 1")
	_, hasUnknown := table["melk"]["zuivelafdeling"]
	assert.False(t, hasUnknown, "unknown category dropped")

	_, hasBrood := table["brood"]
	assert.False(t, hasBrood, "query with only unknown categories dropped")

	assert.Equal(t, 0.0, table["kip"][domain.CategoryMeatFishVeg], "weight clamped to 0")
}

func TestFetch_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Fetch(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBoostsUnavailable)
}

func TestFetch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Fetch(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBoostsUnavailable)
}

func TestFetch_RetriesTransientFailure(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]map[string]float64{
			"melk": {"dairy": 0.5},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	table, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Len(t, table, 1)
}
