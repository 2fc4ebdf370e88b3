package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/api/dto"
)

func TestLoadoutHandler_SaveAndApply(t *testing.T) {
	store, item := newStoreWithItem(t, "alice")
	handler := NewLoadoutHandler(store, nil)
	e := newTestEcho()

	index, err := store.Equipment().Get("alice")
	require.NoError(t, err)
	require.NoError(t, index.Equip(item.ID, "Finger", 0))
	require.NoError(t, store.Equipment().Save("alice", index))

	c, rec := newTestContext(e, http.MethodPost, "/api/loadouts", `{"name":"raiding"}`, "alice")
	require.NoError(t, handler.SaveLoadout(c))
	assertStatus(t, rec, http.StatusOK)

	var saved dto.Loadout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, "raiding", saved.Name)

	// Clear the slot, then apply the snapshot back.
	index, err = store.Equipment().Get("alice")
	require.NoError(t, err)
	require.NoError(t, index.Unequip("Finger", 0))
	require.NoError(t, store.Equipment().Save("alice", index))

	c, rec = newTestContext(e, http.MethodPost, "/api/loadouts/"+saved.ID+"/apply", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues(saved.ID)
	require.NoError(t, handler.ApplyLoadout(c))
	assertStatus(t, rec, http.StatusOK)

	index, err = store.Equipment().Get("alice")
	require.NoError(t, err)
	assert.Equal(t, item.ID, index.ItemAt("Finger", 0))
}

func TestLoadoutHandler_SaveRequiresName(t *testing.T) {
	store, _ := newStoreWithItem(t, "alice")
	handler := NewLoadoutHandler(store, nil)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/api/loadouts", `{"name":""}`, "alice")
	require.NoError(t, handler.SaveLoadout(c))
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestLoadoutHandler_ApplyMissing(t *testing.T) {
	store, _ := newStoreWithItem(t, "alice")
	handler := NewLoadoutHandler(store, nil)
	e := newTestEcho()

	id := uuid.NewString()
	c, rec := newTestContext(e, http.MethodPost, "/api/loadouts/"+id+"/apply", "", "alice")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, handler.ApplyLoadout(c))
	assertStatus(t, rec, http.StatusNotFound)
}

func TestLoadoutHandler_Delete(t *testing.T) {
	store, _ := newStoreWithItem(t, "alice")
	handler := NewLoadoutHandler(store, nil)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodPost, "/api/loadouts", `{"name":"raiding"}`, "alice")
	require.NoError(t, handler.SaveLoadout(c))
	assertStatus(t, rec, http.StatusOK)

	var saved dto.Loadout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))

	c, rec = newTestContext(e, http.MethodDelete, "/api/loadouts/"+saved.ID, "", "alice")
	c.SetParamNames("id")
	c.SetParamValues(saved.ID)
	require.NoError(t, handler.DeleteLoadout(c))
	assertStatus(t, rec, http.StatusOK)

	c, rec = newTestContext(e, http.MethodGet, "/api/loadouts", "", "alice")
	require.NoError(t, handler.GetLoadouts(c))
	var loadouts []*dto.Loadout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loadouts))
	assert.Empty(t, loadouts)
}
