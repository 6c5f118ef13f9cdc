package rmp

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head><title>Jane Doe at Example University</title></head>
<body>
<script>
	window.__RELAY_STORE__ = {
		"client:root": {"__id": "client:root", "__typename": "Query"},
		"VGVhY2hlci0x": {
			"__id": "VGVhY2hlci0x",
			"__typename": "Teacher",
			"firstName": "Jane",
			"lastName": "Doe"
		},
		"client:VGVhY2hlci0x:ratingsDistribution": {
			"__id": "client:VGVhY2hlci0x:ratingsDistribution",
			"__typename": "ratingsDistribution",
			"r1": 4,
			"r2": 7,
			"r3": 12,
			"r4": 25,
			"r5": 52,
			"total": 100
		}
	};
</script>
</body>
</html>`

func TestExtractDistribution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     string
		expected *Distribution
		wantErr  error
	}{
		{
			name:     "success: extracts counts from relay store",
			page:     samplePage,
			expected: &Distribution{R1: 4, R2: 7, R3: 12, R4: 25, R5: 52},
		},
		{
			name:    "error: page without relay store",
			page:    `<html><body>nothing here</body></html>`,
			wantErr: ErrNoRelayStore,
		},
		{
			name:    "error: relay store without distribution",
			page:    `<script>window.__RELAY_STORE__ = {"client:root": {"__typename": "Query"}};</script>`,
			wantErr: ErrNoDistribution,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dist, err := ExtractDistribution([]byte(tt.page))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, dist)
		})
	}
}

func TestDistribution_Total(t *testing.T) {
	t.Parallel()

	dist := Distribution{R1: 1, R2: 2, R3: 3, R4: 4, R5: 5}
	assert.Equal(t, 15, dist.Total())
}

func TestParseRelayStore_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := ParseRelayStore([]byte(`<script>window.__RELAY_STORE__ = {"broken": };</script>`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRelayStore)
}

func TestClient_FetchDistribution(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprint(w, samplePage)
	}))
	defer srv.Close()

	client := NewClient("", 5*time.Second)
	dist, err := client.FetchDistribution(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, 100, dist.Total())
}

func TestClient_FetchDistribution_RelativeLink(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/professor/12345", r.URL.Path)
		fmt.Fprint(w, samplePage)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	dist, err := client.FetchDistribution(context.Background(), "/professor/12345")
	require.NoError(t, err)
	assert.Equal(t, 100, dist.Total())
}

func TestClient_FetchDistribution_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient("", 5*time.Second)
	_, err := client.FetchDistribution(context.Background(), srv.URL)
	require.Error(t, err)
}
