package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(loginResponse{Token: "backend-token"})
	})

	mux.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer backend-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"user":{"id":"u1","firstName":"Ana","gender":"female"},"relationshipStartDate":"2020-02-14"}`))
	})

	mux.HandleFunc("/invites/accept", func(w http.ResponseWriter, r *http.Request) {
		var req acceptInviteRequest
		json.NewDecoder(r.Body).Decode(&req)
		switch req.Code {
		case "ABCD1234":
			w.WriteHeader(http.StatusNoContent)
		case "GONE0000":
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "code not found"})
		default:
			w.WriteHeader(http.StatusConflict)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientLoginAndProfile(t *testing.T) {
	server := newTestServer(t)
	client := NewClient(server.URL+"/", 5*time.Second)
	ctx := context.Background()

	token, err := client.Login(ctx, "ana@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "backend-token", token)

	profile, err := client.Profile(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.User.ID)
	assert.Nil(t, profile.Partner)
	require.NotNil(t, profile.RelationshipStartDate)
	assert.Equal(t, "2020-02-14", *profile.RelationshipStartDate)
}

func TestClientLoginUnauthorized(t *testing.T) {
	client := NewClient(newTestServer(t).URL, 5*time.Second)

	_, err := client.Login(context.Background(), "ana@example.com", "wrong")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestClientAcceptInvite(t *testing.T) {
	client := NewClient(newTestServer(t).URL, 5*time.Second)
	ctx := context.Background()

	assert.NoError(t, client.AcceptInvite(ctx, "backend-token", "ABCD1234"))

	err := client.AcceptInvite(ctx, "backend-token", "GONE0000")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "code not found")

	err = client.AcceptInvite(ctx, "backend-token", "USED0000")
	assert.ErrorIs(t, err, ErrRejected)
}

func TestClientUnreachable(t *testing.T) {
	server := newTestServer(t)
	client := NewClient(server.URL, time.Second)
	server.Close()

	_, err := client.Login(context.Background(), "ana@example.com", "secret")
	assert.Error(t, err)
}
