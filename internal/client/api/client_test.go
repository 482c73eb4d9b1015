package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthorizationHeaderFormat(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"token": "fresh"})
	}))
	defer server.Close()

	client := NewClient(server.URL, TokenFunc(func() string { return "abc123" }))
	token, err := client.RefreshToken(context.Background())
	require.NoError(t, err)
	require.Equal(t, "fresh", token)
	require.Equal(t, "bearer abc123", gotHeader)
}

func TestErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "This email already exists!"})
	}))
	defer server.Close()

	client := NewClient(server.URL, TokenFunc(func() string { return "" }))
	_, err := client.SignUp(context.Background(), "a@b.com", "123456")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "This email already exists!", apiErr.Message)
}

func TestErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, TokenFunc(func() string { return "" }))
	err := client.AddFavorite(context.Background(), "some-id")

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Contains(t, apiErr.Error(), "500")
}

func TestSignInRequestShape(t *testing.T) {
	var gotBody map[string]string
	var gotPath, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(Credentials{ID: "u1", Email: "a@b.com", Token: "tok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, TokenFunc(func() string { return "" }))
	creds, err := client.SignIn(context.Background(), "a@b.com", "123456")
	require.NoError(t, err)

	require.Equal(t, http.MethodPost, gotMethod)
	require.Equal(t, "/signin", gotPath)
	require.Equal(t, map[string]string{"email": "a@b.com", "password": "123456"}, gotBody)
	require.Equal(t, "tok", creds.Token)
}
