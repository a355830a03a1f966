package uplink

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healio-monitor/internal/models"
)

func TestForwarder_Forward(t *testing.T) {
	var received models.BandReading
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/vitals", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","vital_id":1}`))
	}))
	defer server.Close()

	f := NewForwarder(server.URL, zap.NewNop())

	err := f.Forward(models.BandReading{
		DeviceID:  "band-01",
		Timestamp: 1000,
		Presence:  true,
		BPM:       74,
		Activity:  "Resting",
		ECG:       512,
	})

	require.NoError(t, err)
	assert.Equal(t, "band-01", received.DeviceID)
	assert.Equal(t, 74, received.BPM)
}

func TestForwarder_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewForwarder(server.URL, zap.NewNop())

	err := f.Forward(models.BandReading{DeviceID: "band-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
