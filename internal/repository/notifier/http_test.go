package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

// TestNotifyOverride_PostsMessage sends chat_id and text as JSON.
func TestNotifyOverride_PostsMessage(t *testing.T) {
	t.Parallel()

	received := make(chan message, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m message

		if r.Method != http.MethodPost || r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		received <- m

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/sendMessage", "42", "Buzzer stopped")

	require.NoError(t, c.NotifyOverride(context.Background(), nil))
	require.Equal(t, message{ChatID: "42", Text: "Buzzer stopped"}, <-received)

	actor := &geofence.Actor{Hostname: "kiosk", Username: "guard"}
	require.NoError(t, c.NotifyOverride(context.Background(), actor))
	require.Equal(t, "Buzzer stopped (guard@kiosk)", (<-received).Text)
}

// TestNotifyOverride_Non2xx reports the status and body.
func TestNotifyOverride_Non2xx(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "chat not found", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, "1", "x").NotifyOverride(context.Background(), nil)
	require.ErrorIs(t, err, errUnexpectedStatus)
	require.Contains(t, err.Error(), "chat not found")
}

// TestNotifyOverride_Unreachable reports transport errors.
func TestNotifyOverride_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	require.Error(t, NewClient(url, "1", "x").NotifyOverride(context.Background(), nil))
}
