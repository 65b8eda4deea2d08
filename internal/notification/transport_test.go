package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaTransportSend(t *testing.T) {
	var captured struct {
		path    string
		auth    string
		payload map[string]any
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.payload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewMetaTransport("12345", "token", server.Client())
	transport.baseURL = server.URL

	err := transport.Send(context.Background(), "+96170123456", "hello")
	require.NoError(t, err)

	assert.Equal(t, "/12345/messages", captured.path)
	assert.Equal(t, "Bearer token", captured.auth)
	assert.Equal(t, "whatsapp", captured.payload["messaging_product"])
	assert.Equal(t, "96170123456", captured.payload["to"], "meta wants the number without +")
	text, ok := captured.payload["text"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello", text["body"])
}

func TestMetaTransportAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid access token"},
		})
	}))
	defer server.Close()

	transport := NewMetaTransport("12345", "bad", server.Client())
	transport.baseURL = server.URL

	err := transport.Send(context.Background(), "+96170123456", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid access token")
}

func TestTwilioTransportSend(t *testing.T) {
	var captured struct {
		path string
		user string
		pass string
		form map[string]string
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.user, captured.pass, _ = r.BasicAuth()
		require.NoError(t, r.ParseForm())
		captured.form = map[string]string{
			"From": r.PostForm.Get("From"),
			"To":   r.PostForm.Get("To"),
			"Body": r.PostForm.Get("Body"),
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	transport := NewTwilioTransport("AC123", "secret", "whatsapp:+14155238886", server.Client())
	transport.baseURL = server.URL

	err := transport.Send(context.Background(), "+96170123456", "hello")
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", captured.path)
	assert.Equal(t, "AC123", captured.user)
	assert.Equal(t, "secret", captured.pass)
	assert.Equal(t, "whatsapp:+14155238886", captured.form["From"])
	assert.Equal(t, "whatsapp:+96170123456", captured.form["To"])
	assert.Equal(t, "hello", captured.form["Body"])
}

func TestTwilioTransportAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid To number"})
	}))
	defer server.Close()

	transport := NewTwilioTransport("AC123", "secret", "whatsapp:+14155238886", server.Client())
	transport.baseURL = server.URL

	err := transport.Send(context.Background(), "bogus", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid To number")
}

func TestConsoleTransportAlwaysSucceeds(t *testing.T) {
	transport := NewConsoleTransport()
	assert.Equal(t, "console", transport.Name())
	assert.NoError(t, transport.Send(context.Background(), "+96170123456", "hello"))
}
