package e2etest

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// getJSON performs a GET and decodes the body into out, returning the response for header checks
func getJSON(t *testing.T, url string, out interface{}) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err, "Should be able to make a request to %s", url)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Should be able to read response body")

	if out != nil {
		require.NoError(t, json.Unmarshal(body, out), "Response should be valid JSON: %s", string(body))
	}
	return resp
}
