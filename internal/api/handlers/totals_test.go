package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/api/services"
	"enhancives/internal/domain"
)

func TestTotalsHandler_GetTotals(t *testing.T) {
	store, item := newStoreWithItem(t, "alice")
	handler := NewTotalsHandler(store, nil)
	e := newTestEcho()

	index, err := store.Equipment().Get("alice")
	require.NoError(t, err)
	require.NoError(t, index.Equip(item.ID, "Finger", 0))
	require.NoError(t, store.Equipment().Save("alice", index))

	c, rec := newTestContext(e, http.MethodGet, "/api/totals", "", "alice")
	require.NoError(t, handler.GetTotals(c))
	assertStatus(t, rec, http.StatusOK)

	var totals map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, 10, totals["Strength"])
}

func TestTotalsHandler_GetTotalsUnauthorized(t *testing.T) {
	store, _ := newStoreWithItem(t, "alice")
	handler := NewTotalsHandler(store, nil)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/totals", "", "")
	require.NoError(t, handler.GetTotals(c))
	assertStatus(t, rec, http.StatusUnauthorized)
}

func TestTotalsHandler_GetAnalysis(t *testing.T) {
	store, item := newStoreWithItem(t, "alice")
	handler := NewTotalsHandler(store, nil)
	e := newTestEcho()

	index, err := store.Equipment().Get("alice")
	require.NoError(t, err)
	require.NoError(t, index.Equip(item.ID, "Finger", 0))
	require.NoError(t, store.Equipment().Save("alice", index))

	c, rec := newTestContext(e, http.MethodGet, "/api/totals/analysis", "", "alice")
	require.NoError(t, handler.GetAnalysis(c))
	assertStatus(t, rec, http.StatusOK)

	var analysis services.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))

	entry, ok := analysis.Classified["Strength"]
	require.True(t, ok)
	assert.Equal(t, 10, entry.Value)
	assert.Equal(t, 40, entry.Cap)
	assert.Equal(t, domain.StatusNormal, entry.Status)
	assert.Equal(t, 1, analysis.Summary.UnderCap)

	require.Len(t, analysis.Gaps, 1)
	assert.Equal(t, 30, analysis.Gaps[0].Needed)
}
