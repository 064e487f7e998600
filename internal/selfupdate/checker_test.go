package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://example.com/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name          string
		current       string
		latestTag     string
		wantAvailable bool
	}{
		{"newer available", "v1.2.0", "v1.3.0", true},
		{"already latest", "v1.3.0", "v1.3.0", false},
		{"running ahead of release", "v1.4.0", "v1.3.0", false},
		{"tag without v prefix", "v1.2.0", "1.3.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, tt.latestTag, http.StatusOK)
			c := NewCheckerWithBaseURL(srv.URL)

			result, err := c.Check(context.Background(), &CheckInput{Version: tt.current})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, result.UpdateAvailable)
			assert.Equal(t, tt.latestTag, result.LatestVersion)
		})
	}
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker()
	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_HTTPError(t *testing.T) {
	srv := releaseServer(t, "v1.0.0", http.StatusForbidden)
	c := NewCheckerWithBaseURL(srv.URL)

	_, err := c.Check(context.Background(), &CheckInput{Version: "v0.9.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCheck_BadTag(t *testing.T) {
	srv := releaseServer(t, "nightly-build", http.StatusOK)
	c := NewCheckerWithBaseURL(srv.URL)

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestCanonicalVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", canonicalVersion("1.2.3"))
	assert.Equal(t, "v1.2.3", canonicalVersion("v1.2.3"))
	assert.Equal(t, "", canonicalVersion(""))
}
