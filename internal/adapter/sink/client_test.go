package sink

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacewatch/internal/core/domain"
	"pacewatch/internal/core/port"
)

func testPayload() domain.ExportPayload {
	return domain.ExportPayload{
		CampaignID:  1,
		AccountID:   10,
		MetricDate:  "2025-01-15",
		Impressions: 1000,
		Clicks:      30,
		Spend:       95.5,
		Currency:    "USD",
	}
}

func TestDeliverPostsJSON(t *testing.T) {
	var got domain.ExportPayload
	var header http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second)
	err := c.Deliver(context.Background(), testPayload())
	require.NoError(t, err)

	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.Equal(t, "secret", header.Get("X-Api-Key"))
	assert.NotEmpty(t, header.Get("X-Request-Id"))
	assert.Equal(t, int64(1), got.CampaignID)
	assert.Equal(t, "2025-01-15", got.MetricDate)
	assert.InDelta(t, 95.5, got.Spend, 1e-9)
}

func TestDeliverNon2xxReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("warehouse unavailable"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)
	err := c.Deliver(context.Background(), testPayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "warehouse unavailable")
}

func TestDeliverWithoutEndpoint(t *testing.T) {
	c := NewClient("", "", time.Second)
	err := c.Deliver(context.Background(), testPayload())
	assert.ErrorIs(t, err, port.ErrSinkNotConfigured)
}

func TestDeliverRespectsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := c.Deliver(ctx, testPayload())
	assert.Error(t, err)
}
