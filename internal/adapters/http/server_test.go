package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dylo101/DFA-Union/pkg/automaton"
	"github.com/dylo101/DFA-Union/pkg/ports"
)

const docA = `{
	"states": [
		{"state": "q0", "a": "q1"},
		{"state": "q1", "a": "q1"}
	],
	"start-state": "q0",
	"accept-states": [{"state": "q1"}]
}`

const docB = `{
	"states": [{"state": "p0", "a": "p0"}],
	"start-state": "p0",
	"accept-states": []
}`

func postUnion(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/union", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHandleUnion_OK(t *testing.T) {
	handler := NewHandler()

	rr := postUnion(t, handler, fmt.Sprintf(`{"a": %s, "b": %s}`, docA, docB))
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Valid  bool            `json:"valid"`
		Union  json.RawMessage `json:"union"`
		Report struct {
			Findings []automaton.Finding `json:"findings"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Report.Findings)

	doc, err := automaton.DecodeDocument(resp.Union, automaton.FormatJSON)
	require.NoError(t, err)
	flat := doc.Automaton()
	assert.Equal(t, []string{"q0,p0", "q1,p0"}, flat.States)
	assert.Equal(t, "q0,p0", flat.Start)
	assert.Equal(t, []string{"q1,p0"}, flat.Accepts)
}

func TestHandleUnion_ConstructionFailure(t *testing.T) {
	handler := NewHandler()

	// b has no transition on "a".
	brokenB := `{
		"states": [{"state": "p0", "z": "p0"}],
		"start-state": "p0",
		"accept-states": []
	}`
	rr := postUnion(t, handler, fmt.Sprintf(`{"a": %s, "b": %s}`, docA, brokenB))
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, `"p0"`)
	assert.Contains(t, resp.Error, `"a"`)
}

func TestHandleUnion_ValidationFailure(t *testing.T) {
	handler := NewHandler()

	// a's transition dangles, so the union validates dirty.
	danglingA := `{
		"states": [{"state": "q0", "a": "ghost"}],
		"start-state": "q0",
		"accept-states": []
	}`
	rr := postUnion(t, handler, fmt.Sprintf(`{"a": %s, "b": %s}`, danglingA, docB))
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	var resp struct {
		Valid  bool            `json:"valid"`
		Union  json.RawMessage `json:"union"`
		Report struct {
			Findings []automaton.Finding `json:"findings"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Empty(t, resp.Union)
	require.Len(t, resp.Report.Findings, 1)
	assert.Equal(t, automaton.FindingTransition, resp.Report.Findings[0].Kind)
}

func TestHandleUnion_BadRequests(t *testing.T) {
	handler := NewHandler()

	t.Run("Not JSON", func(t *testing.T) {
		rr := postUnion(t, handler, `not json at all`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Missing Second Document", func(t *testing.T) {
		rr := postUnion(t, handler, fmt.Sprintf(`{"a": %s}`, docA))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed Document", func(t *testing.T) {
		rr := postUnion(t, handler, fmt.Sprintf(`{"a": {"states": []}, "b": %s}`, docB))
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "document a")
	})
}

func TestGetHealth(t *testing.T) {
	handler := NewHandler()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestMetricsExposition(t *testing.T) {
	handler := NewHandler()

	// Serve one union so the outcome counter exists.
	rr := postUnion(t, handler, fmt.Sprintf(`{"a": %s, "b": %s}`, docA, docB))
	require.Equal(t, http.StatusOK, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrr := httptest.NewRecorder()
	handler.ServeHTTP(mrr, req)

	require.Equal(t, http.StatusOK, mrr.Code)
	body := mrr.Body.String()
	assert.Contains(t, body, "dfa_union_requests_total")
	assert.Contains(t, body, `outcome="ok"`)
	assert.Contains(t, body, "dfa_union_cache_hits_total")
}

// countingCache wraps an in-memory map to observe cache traffic.
type countingCache struct {
	entries map[string][]byte
	gets    int
	hits    int
	sets    int
}

func newCountingCache() *countingCache {
	return &countingCache{entries: make(map[string][]byte)}
}

func (c *countingCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.gets++
	payload, ok := c.entries[key]
	if !ok {
		return nil, ports.ErrCacheMiss
	}
	c.hits++
	return payload, nil
}

func (c *countingCache) Set(ctx context.Context, key string, payload []byte) error {
	c.sets++
	c.entries[key] = payload
	return nil
}

func TestHandleUnion_Cache(t *testing.T) {
	cache := newCountingCache()
	handler := NewHandler(WithCache(cache))

	body := fmt.Sprintf(`{"a": %s, "b": %s}`, docA, docB)

	first := postUnion(t, handler, body)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, 1, cache.gets)
	assert.Equal(t, 0, cache.hits)
	assert.Equal(t, 1, cache.sets)

	second := postUnion(t, handler, body)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.sets)

	assert.Equal(t, first.Body.String(), second.Body.String())

	// A whitespace-only difference still hits: the key hashes the
	// canonical encoding, not the raw bytes.
	spaced := fmt.Sprintf(`{ "a": %s,   "b": %s }`, docA, docB)
	third := postUnion(t, handler, spaced)
	require.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, 2, cache.hits)
}

func TestHandleUnion_InvalidResultNotCached(t *testing.T) {
	cache := newCountingCache()
	handler := NewHandler(WithCache(cache))

	danglingA := `{
		"states": [{"state": "q0", "a": "ghost"}],
		"start-state": "q0",
		"accept-states": []
	}`
	rr := postUnion(t, handler, fmt.Sprintf(`{"a": %s, "b": %s}`, danglingA, docB))
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, 0, cache.sets)
}
