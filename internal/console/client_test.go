package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCoordinator is a canned-response stand-in for the coordinator API. It
// records every request so tests can assert on paths, methods and headers.
// The read model fetches in parallel, so the request log is mutex-guarded.
type fakeCoordinator struct {
	server    *httptest.Server
	mu        sync.Mutex
	requests  []*http.Request
	responses map[string]any
	failWith  int
}

func newFakeCoordinator(t *testing.T) *fakeCoordinator {
	t.Helper()

	f := &fakeCoordinator{responses: map[string]any{}}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()

		if f.failWith != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.failWith)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": f.failWith, "message": "boom"})
			return
		}

		key := r.Method + " " + r.URL.Path
		body, ok := f.responses[key]
		if !ok {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeCoordinator) lastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeCoordinator) requestLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	log := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		log = append(log, r.Method+" "+r.URL.Path)
	}
	return log
}

func Test_Client_Login_StoresToken(t *testing.T) {
	fake := newFakeCoordinator(t)
	fake.responses["POST /api/v1/auth/login"] = map[string]string{"token": "issued-token"}

	client := NewClient(fake.server.URL)
	require.NoError(t, client.Login(context.Background(), "admin", "secret"))

	fake.responses["GET /api/v1/orders"] = []Order{}
	_, err := client.Orders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer issued-token", fake.lastRequest().Header.Get("Authorization"))
}

func Test_Client_Orders(t *testing.T) {
	fake := newFakeCoordinator(t)
	fake.responses["GET /api/v1/orders"] = []Order{
		{ID: uuid.New(), ClientName: "Acme Corp", Status: "UnAssigned"},
		{ID: uuid.New(), ClientName: "Globex", Status: "Assigned"},
	}

	orders, err := NewClient(fake.server.URL).Orders(context.Background())
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, "Acme Corp", orders[0].ClientName)
}

func Test_Client_SearchOrders_SendsQueryParam(t *testing.T) {
	fake := newFakeCoordinator(t)
	fake.responses["GET /api/v1/orders/search"] = []Order{}

	_, err := NewClient(fake.server.URL).SearchOrders(context.Background(), "Acme")
	require.NoError(t, err)

	assert.Equal(t, "Acme", fake.lastRequest().URL.Query().Get("clientName"))
}

func Test_Client_CreateAssignment_SendsIDs(t *testing.T) {
	fake := newFakeCoordinator(t)
	orderID := uuid.New()
	personID := uuid.New()

	err := NewClient(fake.server.URL).CreateAssignment(context.Background(), orderID, personID)
	require.NoError(t, err)

	query := fake.lastRequest().URL.Query()
	assert.Equal(t, orderID.String(), query.Get("orderId"))
	assert.Equal(t, personID.String(), query.Get("deliveryPersonId"))
}

func Test_Client_UpdateAssignmentStatus_SendsPatch(t *testing.T) {
	fake := newFakeCoordinator(t)
	id := uuid.New()

	err := NewClient(fake.server.URL).UpdateAssignmentStatus(context.Background(), id, "Delivered")
	require.NoError(t, err)

	last := fake.lastRequest()
	assert.Equal(t, http.MethodPatch, last.Method)
	assert.Equal(t, "/api/v1/assignments/"+id.String()+"/status", last.URL.Path)
}

func Test_Client_DecodesAPIError(t *testing.T) {
	fake := newFakeCoordinator(t)
	fake.failWith = http.StatusConflict

	err := NewClient(fake.server.URL).DeleteOrder(context.Background(), uuid.New())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Message)
}

func Test_Client_UnassignedOrderCount(t *testing.T) {
	fake := newFakeCoordinator(t)
	fake.responses["GET /api/v1/orders/status/UnAssigned"] = []Order{
		{ID: uuid.New(), Status: "UnAssigned"},
		{ID: uuid.New(), Status: "UnAssigned"},
		{ID: uuid.New(), Status: "UnAssigned"},
	}

	count, err := NewClient(fake.server.URL).UnassignedOrderCount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), count)
}
