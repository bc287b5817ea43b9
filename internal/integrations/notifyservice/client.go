package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с NotifyService (email/SMS уведомления)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет уведомление о бронировании
func (c *Client) Send(ctx context.Context, notification *ReservationNotification) error {
	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		return nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// SendWithGracefulDegradation отправляет уведомление с graceful degradation.
// Бронирование уже создано к моменту отправки, поэтому недоступность
// сервиса уведомлений не должна приводить к ошибке всей операции —
// возвращается ErrServiceDegraded, вызывающая сторона логирует и продолжает.
func (c *Client) SendWithGracefulDegradation(ctx context.Context, notification *ReservationNotification) error {
	c.log.Info("Sending %s notification for reservation id=%d to %s",
		notification.Type, notification.ReservationID, notification.CustomerPhone)

	if err := c.Send(ctx, notification); err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("NotifyService unavailable, applying graceful degradation for reservation id=%d: %v",
			notification.ReservationID, err)
		return fmt.Errorf("%w: reservation_id=%d, error=%v", ErrServiceDegraded, notification.ReservationID, err)
	}

	c.log.Info("Successfully sent %s notification for reservation id=%d",
		notification.Type, notification.ReservationID)
	return nil
}
