package es

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_api/internal/config"
	"github.com/Skotchmaster/shop_api/internal/models"
)

type fakeES struct {
	mu       sync.Mutex
	indexed  map[string]string
	lastBody map[string]any
	fail     bool
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"error":"unavailable"}`)
		return
	}

	switch {
	case r.URL.Path == "/":
		_, _ = io.WriteString(w, `{"version":{"number":"9.0.0"},"tagline":"You Know, for Search"}`)
	case strings.HasPrefix(r.URL.Path, "/items/_doc/"):
		body, _ := io.ReadAll(r.Body)
		f.indexed[strings.TrimPrefix(r.URL.Path, "/items/_doc/")] = string(body)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"result":"created"}`)
	case r.URL.Path == "/items/_search":
		f.lastBody = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&f.lastBody)
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":3},"hits":[
			{"_id":"1","_source":{"id":1,"name":"Round Widget","price":"2.99","description":"A widget that is round"}}
		]}}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{}`)
	}
}

func (f *fakeES) setFail(v bool) {
	f.mu.Lock()
	f.fail = v
	f.mu.Unlock()
}

func newTestIndex(t *testing.T) (*ItemIndex, *fakeES) {
	t.Helper()
	fake := &fakeES{indexed: map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewItemIndex(client, "items"), fake
}

func TestItemIndex_IndexItems(t *testing.T) {
	idx, fake := newTestIndex(t)

	items := []models.Item{
		{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("2.99")},
		{ID: 2, Name: "Square Widget", Price: decimal.RequireFromString("1.99")},
	}
	require.NoError(t, idx.IndexItems(context.Background(), items))

	require.Len(t, fake.indexed, 2)
	assert.Contains(t, fake.indexed["2"], "Square Widget")
}

func TestItemIndex_SearchItems(t *testing.T) {
	idx, fake := newTestIndex(t)

	total, items, err := idx.SearchItems(context.Background(), "round", 20, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	assert.Equal(t, uint(1), items[0].ID)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("2.99")))

	assert.EqualValues(t, 20, fake.lastBody["from"])
	assert.EqualValues(t, 10, fake.lastBody["size"])
	mm := fake.lastBody["query"].(map[string]any)["multi_match"].(map[string]any)
	assert.Equal(t, "round", mm["query"])
	assert.Equal(t, "AUTO", mm["fuzziness"])
}

func TestItemIndex_Errors(t *testing.T) {
	idx, fake := newTestIndex(t)
	fake.setFail(true)

	_, _, err := idx.SearchItems(context.Background(), "round", 0, 10)
	require.Error(t, err)

	err = idx.IndexItems(context.Background(), []models.Item{{ID: 1}})
	require.Error(t, err)
}

func TestNewClient(t *testing.T) {
	fake := &fakeES{indexed: map[string]string{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), config.Config{ESURL: srv.URL})
	require.NoError(t, err)
	assert.NotNil(t, client)

	fake.setFail(true)
	_, err = NewClient(context.Background(), config.Config{ESURL: srv.URL})
	require.Error(t, err)
}
