package alma

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titlesPage(from, count int) bibsResponse {
	var page bibsResponse
	for i := 0; i < count; i++ {
		var doc bibsDoc
		doc.PNX.Control.SourceRecordID = []string{fmt.Sprintf("99%06d", from+i)}
		doc.PNX.AddData.Identifier = []string{fmt.Sprintf("oai:repo:%d", from+i), "extra"}
		page.Docs = append(page.Docs, doc)
	}
	return page
}

func TestFetchDigitalTitles_Pagination(t *testing.T) {
	var offsets []int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/almaws/v1/bibs", r.URL.Path)
		assert.Equal(t, "rtype,exact,digital", r.URL.Query().Get("q"))
		assert.Equal(t, strconv.Itoa(titlesPageSize), r.URL.Query().Get("limit"))

		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		offsets = append(offsets, offset)

		// Full first page, short second page terminates the loop.
		count := titlesPageSize
		if offset > 0 {
			count = 3
		}
		_ = json.NewEncoder(w).Encode(titlesPage(offset, count))
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: srv.URL, TimeoutSeconds: 5}, nil)

	titles, err := client.FetchDigitalTitles(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{0, titlesPageSize}, offsets)
	require.Len(t, titles, titlesPageSize+3)
	assert.Equal(t, "99000000", titles[0].MMSID)
	assert.Equal(t, []string{"oai:repo:0", "extra"}, titles[0].DCIdentifiers)
}

func TestFetchDigitalTitles_DropsDocsWithoutMMSID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"docs":[
			{"pnx":{"control":{"sourcerecordid":["991"]},"addata":{"identifier":["a"]}}},
			{"pnx":{"control":{},"addata":{"identifier":["b"]}}}
		]}`)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: srv.URL, TimeoutSeconds: 5}, nil)

	titles, err := client.FetchDigitalTitles(context.Background())
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "991", titles[0].MMSID)
}

func TestFetchDigitalTitles_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: srv.URL, TimeoutSeconds: 5}, nil)

	_, err := client.FetchDigitalTitles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
