package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeste7/flw/pkg/domain/service"
	"github.com/aeste7/flw/pkg/infrastructure/inmemory"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := inmemory.NewStore()
	warehouse := service.NewWarehouseService(store.Flowers())
	writeoffs := service.NewWriteoffService(store.Writeoffs(), warehouse, store)
	orders := service.NewOrderService(store.Orders(), warehouse, store)
	bouquets := service.NewBouquetService(store.Bouquets(), warehouse, store)
	notes := service.NewNoteService(store.Notes())
	return Router(NewHandler(warehouse, writeoffs, orders, bouquets, notes))
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestAddAndListFlowers(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/flowers", `{"flower":"rose","amount":10}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/flowers", `{"flower":"rose","amount":5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/flowers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var flowers []struct {
		Flower string `json:"flower"`
		Amount int    `json:"amount"`
	}
	decodeBody(t, rec, &flowers)
	require.Len(t, flowers, 1)
	assert.Equal(t, "rose", flowers[0].Flower)
	assert.Equal(t, 15, flowers[0].Amount)
}

func TestAddFlowersValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/flowers", `{"flower":"","amount":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decodeBody(t, rec, &resp)
	fields := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "flower")
	assert.Contains(t, fields, "amount")
}

func TestMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/flowers", `{"flower":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "malformed request body", resp.Message)
}

func TestFlowerNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/flowers/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/flowers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteFlowerRespondsSuccess(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/flowers", `{"flower":"tulip","amount":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/flowers/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Success bool `json:"success"`
	}
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
}

func TestCreateDeliveryOrderRequiresWindow(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"order": {"from":"alice","to":"bob","address":"main st 1","dateTime":"2026-09-01T10:00:00Z"},
		"items": [{"flower":"rose","amount":2}]
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "timeFrom")
	assert.Contains(t, rec.Body.String(), "timeTo")
}

func TestCreatePickupOrderForcesSentinels(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"order": {"from":"alice","dateTime":"2026-09-01T10:00:00Z","pickup":true},
		"items": [{"flower":"rose","amount":2}]
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var order struct {
		To      string `json:"to"`
		Address string `json:"address"`
		Status  string `json:"status"`
	}
	decodeBody(t, rec, &order)
	assert.Equal(t, "pickup location", order.To)
	assert.Equal(t, "store", order.Address)
	assert.Equal(t, "new", order.Status)
}

func TestCreateShowcaseOrderWithoutWindow(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"order": {"from":"alice","to":"walk-in","address":"counter","dateTime":"2026-09-01T10:00:00Z","showcase":true},
		"items": [{"flower":"rose","amount":1}]
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var order struct {
		TimeFrom *string `json:"timeFrom"`
		TimeTo   *string `json:"timeTo"`
		Showcase bool    `json:"showcase"`
	}
	decodeBody(t, rec, &order)
	assert.Nil(t, order.TimeFrom)
	assert.Nil(t, order.TimeTo)
	assert.True(t, order.Showcase)
}

func TestCreateOrderRejectsDeletedStatus(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"order": {"from":"alice","dateTime":"2026-09-01T10:00:00Z","pickup":true,"status":"deleted"},
		"items": [{"flower":"rose","amount":1}]
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "status")
}

func TestOrderStatusEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"order": {"from":"alice","dateTime":"2026-09-01T10:00:00Z","pickup":true},
		"items": [{"flower":"rose","amount":1}]
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rec, &created)

	rec = doJSON(t, router, http.MethodPut, "/api/orders/1/status", `{"status":"assembled"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated struct {
		Status string `json:"status"`
	}
	decodeBody(t, rec, &updated)
	assert.Equal(t, "assembled", updated.Status)

	rec = doJSON(t, router, http.MethodPut, "/api/orders/1/status", `{"status":"misplaced"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBadDateTimeReportsField(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"order": {"from":"alice","dateTime":"tomorrow","pickup":true},
		"items": [{"flower":"rose","amount":1}]
	}`
	rec := doJSON(t, router, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "dateTime")
	assert.Contains(t, rec.Body.String(), "RFC 3339")
}

func TestWriteoffRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/flowers", `{"flower":"lily","amount":8}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/writeoffs", `{"flower":"lily","amount":3}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/writeoffs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var writeoffs []struct {
		Flower string `json:"flower"`
		Amount int    `json:"amount"`
	}
	decodeBody(t, rec, &writeoffs)
	require.Len(t, writeoffs, 1)
	assert.Equal(t, 3, writeoffs[0].Amount)

	rec = doJSON(t, router, http.MethodDelete, "/api/writeoffs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/writeoffs", "")
	decodeBody(t, rec, &writeoffs)
	assert.Empty(t, writeoffs)
}

func TestBouquetSellAndDisassemble(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/flowers", `{"flower":"peony","amount":6}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/bouquets",
		`{"description":"spring mix","items":[{"flower":"peony","amount":4}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/bouquets/1/disassemble", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/flowers/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var flower struct {
		Amount int `json:"amount"`
	}
	decodeBody(t, rec, &flower)
	assert.Equal(t, 6, flower.Amount)

	rec = doJSON(t, router, http.MethodPost, "/api/bouquets/1/sell", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNoteEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/notes", `{"title":"restock","content":"order more ribbon"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPut, "/api/notes/1", `{"title":"restock soon"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var note struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	decodeBody(t, rec, &note)
	assert.Equal(t, "restock soon", note.Title)
	assert.Equal(t, "order more ribbon", note.Content)

	rec = doJSON(t, router, http.MethodDelete, "/api/notes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "true"))

	rec = doJSON(t, router, http.MethodGet, "/api/notes/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
