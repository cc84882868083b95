package bookingservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
)

// Client клиент внешней системы бронирования площадок
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBookings получает бронирования, пересекающиеся с периодом [from, to]
func (c *Client) GetBookings(ctx context.Context, from, to time.Time) ([]domain.SlotBooking, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s..%s", ErrInvalidRange,
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	}

	query := url.Values{}
	query.Set("from", from.Format(domain.DateFormat))
	query.Set("to", to.Format(domain.DateFormat))
	endpoint := fmt.Sprintf("%s/api/v1/bookings?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("%w: bad request: %s", ErrInvalidResponse, errResp.Message)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload BookingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	bookings := make([]domain.SlotBooking, 0, len(payload.Bookings))
	for _, b := range payload.Bookings {
		booking, err := b.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// GetBookingsWithGracefulDegradation получает бронирования с graceful degradation
// При недоступности внешней системы возвращает ErrServiceDegraded, что позволяет использовать справочник
func (c *Client) GetBookingsWithGracefulDegradation(ctx context.Context, from, to time.Time) ([]domain.SlotBooking, error) {
	c.log.Info("Fetching bookings for %s..%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	bookings, err := c.GetBookings(ctx, from, to)
	if err != nil {
		if errors.Is(err, ErrInvalidRange) {
			return nil, err
		}

		c.log.Error("BookingService unavailable, applying graceful degradation for %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully fetched %d bookings", len(bookings))
	return bookings, nil
}
