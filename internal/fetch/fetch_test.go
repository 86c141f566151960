package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/site-intel/internal/types"
)

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "SiteIntelBot")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body><main>Hello world</main></body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Hello world")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindInvalidURL, fe.Kind)
}

func TestURL_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.Error(t, err)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindStatus, fe.Kind)
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	// The partial result is still returned alongside the error.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
}

func TestURL_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("too late"))
	}))
	defer srv.Close()

	opts := &Options{Timeout: 20 * time.Millisecond, UserAgent: DefaultUserAgent}
	_, err := URL(context.Background(), srv.URL, opts)
	require.Error(t, err)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, KindTimeout, fe.Kind)
}

func TestIsFetchError(t *testing.T) {
	assert.True(t, IsFetchError(&Error{URL: "x", Kind: KindNetwork, Message: "boom"}))
	assert.False(t, IsFetchError(errors.New("plain")))
}

func TestExtractMainText_PrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home About Contact</nav>
		<main>Custom software for small businesses.</main>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractMainText(html, []string{"main"})
	require.NoError(t, err)
	assert.Equal(t, "Custom software for small businesses.", text)
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>Plain content</div><script>var x=1;</script></body></html>`

	text, err := ExtractMainText(html, []string{"main", "article"})
	require.NoError(t, err)
	assert.Equal(t, "Plain content", text)
	assert.NotContains(t, text, "var x")
}

func TestExtractMainText_RemovesNoiseSelectors(t *testing.T) {
	html := `<html><body><main>
		<div class="newsletter-signup">Subscribe!</div>
		<p>Real content</p>
	</main></body></html>`

	text, err := ExtractMainText(html, []string{"main"}, CommonNoiseSelectors()...)
	require.NoError(t, err)
	assert.Contains(t, text, "Real content")
	assert.NotContains(t, text, "Subscribe")
}

func TestCleanWhitespace(t *testing.T) {
	input := "  line one  \n\n\n   line   two\t\n"
	assert.Equal(t, "line one\nline two", CleanWhitespace(input))
}

func TestPageContentSelectors_KnownTypesPrependSpecifics(t *testing.T) {
	selectors := PageContentSelectors(types.PageTypeContact)
	assert.Equal(t, ".contact", selectors[0])
	assert.Contains(t, selectors, "main")

	// Unknown types fall back to the general list.
	assert.Equal(t, DefaultTextSelectors(), PageContentSelectors(types.PageTypeUnknown))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	long := make([]byte, MinContentLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
