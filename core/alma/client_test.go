package alma

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"alma-utilities/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{APIKey: "secret", BaseURL: srv.URL, TimeoutSeconds: 1}, nil)
}

func TestResolve_Found(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	requests := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("q")
		fmt.Fprint(w, `{"docs":[{"pnx":{"control":{"sourcerecordid":["991234567890"]}}}]}`)
	})

	res := client.Resolve(context.Background(), "12345")

	assert.Equal(t, reconcile.StatusFound, res.Status)
	assert.Equal(t, "991234567890", res.MMSID)
	assert.Equal(t, 1, requests, "exactly one outbound request per call")
	assert.Equal(t, "/primo/v1/search", gotPath)
	assert.Equal(t, "apikey secret", gotAuth)
	assert.Equal(t, "dc:identifier,contains,12345", gotQuery)
}

func TestResolve_FallsBackToRecordID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs":[{"pnx":{"control":{"sourcerecordid":[],"recordid":["990000"]}}}]}`)
	})

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusFound, res.Status)
	assert.Equal(t, "990000", res.MMSID)
}

func TestResolve_ZeroDocsIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs":[]}`)
	})

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusNotFound, res.Status)
}

func TestResolve_BadRequestIsNotFound(t *testing.T) {
	// The search endpoint answers 400 when nothing matches.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusNotFound, res.Status)
}

func TestResolve_MultipleMatchesIsAmbiguous(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"), "a second match must be observable")
		fmt.Fprint(w, `{"docs":[
			{"pnx":{"control":{"sourcerecordid":["991"]}}},
			{"pnx":{"control":{"sourcerecordid":["992"]}}}
		]}`)
	})

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusError, res.Status)
	assert.Contains(t, res.Detail, "ambiguous")
	assert.Empty(t, res.MMSID)
}

func TestResolve_MissingRecordIDIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs":[{"pnx":{"control":{}}}]}`)
	})

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusError, res.Status)
	assert.Contains(t, res.Detail, "missing a record id")
}

func TestResolve_MalformedBodyIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs":`)
	})

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusError, res.Status)
	assert.Contains(t, res.Detail, "malformed")
}

func TestResolve_UnexpectedStatusIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusError, res.Status)
	assert.Contains(t, res.Detail, "500")
}

func TestResolve_TimeoutIsError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
		fmt.Fprint(w, `{"docs":[]}`)
	})

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusError, res.Status)
	assert.Contains(t, res.Detail, "timed out")
}

func TestResolve_TransportFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(Config{APIKey: "secret", BaseURL: srv.URL, TimeoutSeconds: 1}, nil)
	srv.Close() // connection refused from here on

	res := client.Resolve(context.Background(), "12345")
	assert.Equal(t, reconcile.StatusError, res.Status)
	assert.NotEmpty(t, res.Detail)
}

func TestNewClient_DefaultsTimeout(t *testing.T) {
	client := NewClient(Config{APIKey: "k", BaseURL: "http://example.invalid"}, nil)
	require.NotNil(t, client)
	assert.Equal(t, 30*time.Second, client.timeout)
}
