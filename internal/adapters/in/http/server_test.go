package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Malformed identifiers and unknown statuses must be rejected before any use
// case runs, so a server without handlers is enough for these tests.

func performRequest(t *testing.T, handler echo.HandlerFunc, method, target, body string,
	pathParams map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	ctx := e.NewContext(req, rec)
	for name, value := range pathParams {
		ctx.SetParamNames(name)
		ctx.SetParamValues(value)
	}

	require.NoError(t, handler(ctx))

	return rec
}

func Test_Server_GetOrder_MalformedID(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.GetOrder, http.MethodGet, "/api/v1/orders/not-a-uuid", "",
		map[string]string{"id": "not-a-uuid"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Server_DeleteOrder_MalformedID(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.DeleteOrder, http.MethodDelete, "/api/v1/orders/123", "",
		map[string]string{"id": "123"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Server_GetOrdersByStatus_UnknownStatus(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.GetOrdersByStatus, http.MethodGet, "/api/v1/orders/status/Shipped", "",
		map[string]string{"status": "Shipped"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Server_CreateOrder_MissingFields(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.CreateOrder, http.MethodPost, "/api/v1/orders",
		`{"clientName":"","deliveryAddress":"","orderDate":"2024-06-15"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Server_UpdateOrder_UnknownStatus(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.UpdateOrder, http.MethodPut, "/api/v1/orders/5445e1a5-7c1b-4c45-bd1a-df3fca24fea8",
		`{"clientName":"Acme Corp","deliveryAddress":"123 Main Street","orderDate":"2024-06-15","status":"Lost"}`,
		map[string]string{"id": "5445e1a5-7c1b-4c45-bd1a-df3fca24fea8"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Server_CreateAssignment_MissingQueryParams(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.CreateAssignment, http.MethodPost, "/api/v1/assignments", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Server_GetAssignments_UnknownStatusFilter(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.GetAssignments, http.MethodGet, "/api/v1/assignments?status=Paused", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Server_UpdateAssignmentStatus_UnknownStatus(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.UpdateAssignmentStatus, http.MethodPatch,
		"/api/v1/assignments/5445e1a5-7c1b-4c45-bd1a-df3fca24fea8/status",
		`{"status":"Teleported"}`,
		map[string]string{"id": "5445e1a5-7c1b-4c45-bd1a-df3fca24fea8"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Server_CreateDeliveryPerson_MissingFields(t *testing.T) {
	server := &Server{}

	rec := performRequest(t, server.CreateDeliveryPerson, http.MethodPost, "/api/v1/delivery-persons",
		`{"name":"","phoneNumber":""}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
