package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enhancives/internal/api/dto"
	"enhancives/internal/repository"
)

func TestItemHandler_GetItems(t *testing.T) {
	store, _ := newStoreWithItem(t, "alice")
	handler := NewItemHandler(store, nil)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/items", "", "alice")
	require.NoError(t, handler.GetItems(c))
	assertStatus(t, rec, http.StatusOK)

	var items []*dto.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "mithril ring", items[0].Name)
}

func TestItemHandler_GetItemsUnauthorized(t *testing.T) {
	store := repository.NewMemoryStore()
	handler := NewItemHandler(store, nil)
	e := newTestEcho()

	c, rec := newTestContext(e, http.MethodGet, "/api/items", "", "")
	require.NoError(t, handler.GetItems(c))
	assertStatus(t, rec, http.StatusUnauthorized)
}

func TestItemHandler_CreateItem(t *testing.T) {
	store := repository.NewMemoryStore()
	handler := NewItemHandler(store, nil)
	e := newTestEcho()

	t.Run("valid item", func(t *testing.T) {
		body := `{"name":"amber amulet","permanence":"Persists","targets":[{"target":"Aura","type":"Base","amount":4}]}`
		c, rec := newTestContext(e, http.MethodPost, "/api/items", body, "alice")
		require.NoError(t, handler.CreateItem(c))
		assertStatus(t, rec, http.StatusOK)

		var item dto.Item
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, "amber amulet", item.Name)
	})

	t.Run("missing targets rejected", func(t *testing.T) {
		body := `{"name":"dud","permanence":"Persists","targets":[]}`
		c, rec := newTestContext(e, http.MethodPost, "/api/items", body, "alice")
		require.NoError(t, handler.CreateItem(c))
		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("bad permanence rejected", func(t *testing.T) {
		body := `{"name":"dud","permanence":"Eternal","targets":[{"target":"Aura","type":"Base","amount":4}]}`
		c, rec := newTestContext(e, http.MethodPost, "/api/items", body, "alice")
		require.NoError(t, handler.CreateItem(c))
		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestItemHandler_UpdateItem(t *testing.T) {
	store, item := newStoreWithItem(t, "alice")
	handler := NewItemHandler(store, nil)
	e := newTestEcho()

	body := `{"name":"renamed ring","permanence":"Persists","targets":[{"target":"Strength","type":"Bonus","amount":5}]}`
	c, rec := newTestContext(e, http.MethodPut, fmt.Sprintf("/api/items/%s", item.ID), body, "alice")
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())

	require.NoError(t, handler.UpdateItem(c))
	assertStatus(t, rec, http.StatusOK)

	stored, err := store.Items().FindByID("alice", item.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed ring", stored.Name)
}

func TestItemHandler_DeleteItem(t *testing.T) {
	store, item := newStoreWithItem(t, "alice")
	handler := NewItemHandler(store, nil)
	e := newTestEcho()

	t.Run("existing item", func(t *testing.T) {
		c, rec := newTestContext(e, http.MethodDelete, "/api/items/"+item.ID.String(), "", "alice")
		c.SetParamNames("id")
		c.SetParamValues(item.ID.String())
		require.NoError(t, handler.DeleteItem(c))
		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("missing item", func(t *testing.T) {
		id := uuid.NewString()
		c, rec := newTestContext(e, http.MethodDelete, "/api/items/"+id, "", "alice")
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, handler.DeleteItem(c))
		assertStatus(t, rec, http.StatusNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		c, rec := newTestContext(e, http.MethodDelete, "/api/items/nope", "", "alice")
		c.SetParamNames("id")
		c.SetParamValues("nope")
		require.NoError(t, handler.DeleteItem(c))
		assertStatus(t, rec, http.StatusBadRequest)
	})
}
