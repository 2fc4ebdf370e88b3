package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/api/services"
)

func TestBackupHandler_ExportImport(t *testing.T) {
	store, item := newStoreWithItem(t, "alice")
	handler := NewBackupHandler(store, nil)
	e := newTestEcho()

	index, err := store.Equipment().Get("alice")
	require.NoError(t, err)
	require.NoError(t, index.Equip(item.ID, "Finger", 0))
	require.NoError(t, store.Equipment().Save("alice", index))

	c, rec := newTestContext(e, http.MethodGet, "/api/backup/export", "", "alice")
	require.NoError(t, handler.Export(c))
	assertStatus(t, rec, http.StatusOK)

	var envelope services.BackupEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "1.0", envelope.Version)
	require.Len(t, envelope.Items, 1)

	// Import the export into another account.
	c, rec = newTestContext(e, http.MethodPost, "/api/backup/import", rec.Body.String(), "bob")
	require.NoError(t, handler.Import(c))
	assertStatus(t, rec, http.StatusOK)

	var result services.ImportResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 0, result.Duplicates)

	items, err := store.Items().FindByUsername("bob")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestBackupHandler_ImportInvalidItem(t *testing.T) {
	store, _ := newStoreWithItem(t, "alice")
	handler := NewBackupHandler(store, nil)
	e := newTestEcho()

	body := `{"version":"1.0","items":[{"name":"broken","permanence":"Persists","targets":[]}]}`
	c, rec := newTestContext(e, http.MethodPost, "/api/backup/import", body, "alice")
	require.NoError(t, handler.Import(c))
	assertStatus(t, rec, http.StatusBadRequest)
}
