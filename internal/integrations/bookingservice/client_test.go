package bookingservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	from = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
)

func TestClient_GetBookings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bookings", r.URL.Path)
		assert.Equal(t, "2026-02-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-02-28", r.URL.Query().Get("to"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookings":[{
			"id":"bk-1","areaSlotId":"area-1","bannerType":"メインバナー","hallName":"マルハン渋谷店",
			"startDate":"2026-02-01","endDate":"2026-02-07","startHour":0,"endHour":24,"bookingStatus":"確定"
		}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, nopLogger{})

	bookings, err := client.GetBookings(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "area-1", bookings[0].AreaSlotID)
	assert.Equal(t, domain.BannerMain, bookings[0].BannerType)
	assert.Equal(t, domain.BookingConfirmed, bookings[0].BookingStatus)
	assert.Equal(t, time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC), bookings[0].EndDate)
}

func TestClient_GetBookingsErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"code":400,"message":"bad range"}`, wantErr: ErrInvalidResponse},
		{name: "server error", status: http.StatusInternalServerError, body: "oops", wantErr: ErrInvalidResponse},
		{name: "broken json", status: http.StatusOK, body: "{", wantErr: ErrInvalidResponse},
		{name: "unknown status", status: http.StatusOK, body: `{"bookings":[{"id":"x","startDate":"2026-02-01","endDate":"2026-02-02","bookingStatus":"取消"}]}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second, nopLogger{})

			_, err := client.GetBookings(context.Background(), from, to)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = client.GetBookingsWithGracefulDegradation(context.Background(), from, to)
			assert.ErrorIs(t, err, ErrServiceDegraded)
		})
	}
}

func TestClient_GracefulDegradationOnUnreachableService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 100*time.Millisecond, nopLogger{})

	_, err := client.GetBookingsWithGracefulDegradation(context.Background(), from, to)
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_InvalidRange(t *testing.T) {
	client := NewClient("http://localhost:0", time.Second, nopLogger{})

	_, err := client.GetBookingsWithGracefulDegradation(context.Background(), to, from)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.NotErrorIs(t, err, ErrServiceDegraded)
}
