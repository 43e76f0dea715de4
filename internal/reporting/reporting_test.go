package reporting

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	schedule := json.RawMessage(`[{"slotNumber":108100001,"slotTime":"2026-08-26T10:00:00Z"}]`)

	t.Run("GoodPath_PayloadIsPostedAsJSON", func(t *testing.T) {
		var received Payload
		var contentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			contentType = r.Header.Get("Content-Type")
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewHTTPClient(ClientOptions{
			Endpoint: server.URL,
			PoolID:   "pool-0",
			Timeout:  5 * time.Second,
		})

		err := client.Report(context.Background(), 450, schedule)
		require.NoError(t, err)
		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, "pool-0", received.PoolID)
		assert.Equal(t, 450, received.Epoch)
		assert.JSONEq(t, string(schedule), string(received.Schedule))
	})

	t.Run("GoodPath_Any2xxIsSuccess", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := NewHTTPClient(ClientOptions{
			Endpoint: server.URL,
			PoolID:   "pool-0",
			Timeout:  5 * time.Second,
		})

		require.NoError(t, client.Report(context.Background(), 450, schedule))
	})

	t.Run("SadPath_MalformedScheduleIsNeverSent", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewHTTPClient(ClientOptions{
			Endpoint: server.URL,
			PoolID:   "pool-0",
			Timeout:  5 * time.Second,
		})

		err := client.Report(context.Background(), 450, json.RawMessage(`{"unterminated":`))
		require.Error(t, err)

		malformed := &MalformedScheduleError{}
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, 450, malformed.Epoch)
		assert.Equal(t, 0, calls)
	})

	t.Run("SadPath_ServerErrorStatusFailsTheReport", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewHTTPClient(ClientOptions{
			Endpoint: server.URL,
			PoolID:   "pool-0",
			Timeout:  5 * time.Second,
		})

		err := client.Report(context.Background(), 450, schedule)
		require.Error(t, err)

		httpError := &HTTPError{}
		require.ErrorAs(t, err, &httpError)
		assert.Equal(t, http.StatusInternalServerError, httpError.StatusCode)
	})

	t.Run("SadPath_ClientErrorStatusFailsTheReport", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "unknown pool", http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewHTTPClient(ClientOptions{
			Endpoint: server.URL,
			PoolID:   "pool-0",
			Timeout:  5 * time.Second,
		})

		err := client.Report(context.Background(), 450, schedule)

		httpError := &HTTPError{}
		require.ErrorAs(t, err, &httpError)
		assert.Equal(t, http.StatusBadRequest, httpError.StatusCode)
	})

	t.Run("SadPath_UnreachableEndpointFailsTheReport", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		server.Close()

		client := NewHTTPClient(ClientOptions{
			Endpoint: server.URL,
			PoolID:   "pool-0",
			Timeout:  time.Second,
		})

		err := client.Report(context.Background(), 450, schedule)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to send report")
	})
}
