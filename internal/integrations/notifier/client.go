package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс логирования, нужный клиенту
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего сервиса уведомлений. Отправка подтверждений
// best effort: флоу бронирования логирует сбои и никогда не откатывает
// созданную запись из-за недоставленного сообщения.
type Client struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиента сервиса уведомлений. При enabled = false
// SendConfirmation превращается в no-op с логированием.
func NewClient(baseURL string, timeout time.Duration, enabled bool, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendConfirmation просит сервис доставить подтверждение бронирования
func (c *Client) SendConfirmation(ctx context.Context, req *ConfirmationRequest) error {
	if !c.enabled {
		c.log.Info("Notifier disabled, skipping confirmation for appointment id=%d", req.AppointmentID)
		return nil
	}

	url := fmt.Sprintf("%s/internal/notifications/confirmation", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
