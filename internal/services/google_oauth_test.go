package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/learnhub/auth-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newFakeGoogle(t *testing.T, profile GoogleProfile) (*httptest.Server, *GoogleOAuthClient) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "provider-token",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer provider-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(profile)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := NewGoogleOAuthClient(&config.Config{
		GoogleClientID:     "cid",
		GoogleClientSecret: "csecret",
		GoogleCallbackURL:  "http://localhost/callback",
	})
	client.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:  srv.URL + "/auth",
		TokenURL: srv.URL + "/token",
	}
	client.userInfoURL = srv.URL + "/userinfo"

	return srv, client
}

func TestFetchProfile(t *testing.T) {
	_, client := newFakeGoogle(t, GoogleProfile{
		Email:      "Ana.Lopez@Gmail.com",
		GivenName:  "Ana",
		FamilyName: "Lopez",
		Name:       "Ana Lopez",
	})

	profile, err := client.FetchProfile(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "Ana.Lopez@Gmail.com", profile.Email)
	assert.Equal(t, "Ana Lopez", profile.FullName())
}

func TestFetchProfile_NoEmail(t *testing.T) {
	_, client := newFakeGoogle(t, GoogleProfile{Name: "Ana Lopez"})

	_, err := client.FetchProfile(context.Background(), "auth-code")
	assert.Error(t, err)
}

func TestGoogleProfile_FullName(t *testing.T) {
	assert.Equal(t, "Ana Lopez", (&GoogleProfile{Name: "Ana Lopez"}).FullName())
	assert.Equal(t, "Ana Lopez", (&GoogleProfile{GivenName: "Ana", FamilyName: "Lopez"}).FullName())
	assert.Equal(t, "Ana", (&GoogleProfile{GivenName: "Ana"}).FullName())
}

func TestNewOAuthState_Unique(t *testing.T) {
	s1, err := NewOAuthState()
	require.NoError(t, err)
	s2, err := NewOAuthState()
	require.NoError(t, err)
	assert.NotEmpty(t, s1)
	assert.NotEqual(t, s1, s2)
}

func TestGoogleOAuthClient_Enabled(t *testing.T) {
	assert.False(t, NewGoogleOAuthClient(&config.Config{}).Enabled())
	assert.True(t, NewGoogleOAuthClient(&config.Config{
		GoogleClientID: "cid", GoogleClientSecret: "csecret",
	}).Enabled())
}
