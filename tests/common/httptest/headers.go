//go:build unit || e2e

package httptest

import (
	"mime"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertDownload checks the disposition type and file name of a download response.
func AssertDownload(t *testing.T, w *httptest.ResponseRecorder, disposition, filename string) {
	t.Helper()
	got, params, err := mime.ParseMediaType(w.Header().Get("Content-Disposition"))
	require.NoError(t, err, "Content-Disposition is not parseable")
	assert.Equal(t, disposition, got)
	assert.Equal(t, filename, params["filename"])
}
