package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumadent/clinic-booking-backend/internal/booking"
	"github.com/lumadent/clinic-booking-backend/internal/catalog"
	"github.com/lumadent/clinic-booking-backend/internal/pkg/response"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := booking.NewService(booking.NewMemoryRepository(), catalog.New(), zap.NewNop())
	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewHandler(svc))
	return r
}

func validPayload() map[string]any {
	return map[string]any{
		"service_id":    "checkup",
		"date":          "2026-02-03",
		"time_slot":     "10:00 AM",
		"patient_name":  "John Doe",
		"patient_email": "john@example.com",
		"patient_phone": "+15551234567",
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createBooking(t *testing.T, r *gin.Engine, payload map[string]any) BookingResponse {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/v1/bookings", payload)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateBooking(t *testing.T) {
	r := newTestRouter()

	resp := createBooking(t, r, validPayload())
	require.NotEmpty(t, resp.ID)
	require.Regexp(t, `^BK-[0-9A-F]{8}$`, resp.ConfirmationNumber)
	require.Equal(t, "Routine Checkup", resp.ServiceName)
	require.Equal(t, "2026-02-03", resp.Date)
	require.Equal(t, "pending", resp.Status)
}

func TestCreateBookingValidationErrors(t *testing.T) {
	r := newTestRouter()

	payload := validPayload()
	payload["patient_email"] = "nope"
	payload["patient_phone"] = "123"

	rec := doJSON(t, r, http.MethodPost, "/v1/bookings", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Invalid email address", resp.Fields["email"])
	require.Equal(t, "Phone number must be at least 10 digits", resp.Fields["phone"])
}

func TestCreateBookingSlotConflict(t *testing.T) {
	r := newTestRouter()

	createBooking(t, r, validPayload())

	rec := doJSON(t, r, http.MethodPost, "/v1/bookings", validPayload())
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBookingByIDAndConfirmation(t *testing.T) {
	r := newTestRouter()
	created := createBooking(t, r, validPayload())

	for _, ref := range []string{created.ID, created.ConfirmationNumber} {
		rec := doJSON(t, r, http.MethodGet, "/v1/bookings/"+ref, nil)
		require.Equal(t, http.StatusOK, rec.Code, "ref %q", ref)

		var resp BookingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, created.ID, resp.ID)
	}

	rec := doJSON(t, r, http.MethodGet, "/v1/bookings/not-a-reference", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/v1/bookings/BK-DEADBEEF", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelBooking(t *testing.T) {
	r := newTestRouter()
	created := createBooking(t, r, validPayload())

	rec := doJSON(t, r, http.MethodPatch, "/v1/bookings/"+created.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "cancelled", resp.Status)

	rec = doJSON(t, r, http.MethodPatch, "/v1/bookings/"+created.ConfirmationNumber+"/cancel", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListBookings(t *testing.T) {
	r := newTestRouter()

	for _, slot := range []string{"10:00 AM", "11:00 AM"} {
		payload := validPayload()
		payload["time_slot"] = slot
		createBooking(t, r, payload)
	}

	rec := doJSON(t, r, http.MethodGet, "/v1/bookings?page=1&page_size=10&service_id=checkup", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.PageResponse[BookingResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Total)
	require.Len(t, resp.Items, 2)

	rec = doJSON(t, r, http.MethodGet, "/v1/bookings?status=archived", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckSlot(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, http.MethodGet, "/v1/bookings/availability?date=2026-02-03&time_slot=10:00+AM", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CheckSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Available)

	createBooking(t, r, validPayload())

	rec = doJSON(t, r, http.MethodGet, "/v1/bookings/availability?date=2026-02-03&time_slot=10:00+AM", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Available)

	rec = doJSON(t, r, http.MethodGet, "/v1/bookings/availability?date=2026-02-03", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
