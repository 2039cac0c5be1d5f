package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// envelope — конверт ответа API сервера.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// endpoint склеивает базовый URL сервера и путь API.
func endpoint(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

// decodeData разбирает конверт и декодирует data в out.
// Неуспешный статус превращается в ошибку с сообщением сервера.
func decodeData(resp *http.Response, body []byte, out any) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return fmt.Errorf("server status %d: %s", resp.StatusCode, msg)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
