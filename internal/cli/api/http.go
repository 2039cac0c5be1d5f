package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	fsrepo "LinkBank/internal/cli/repo/fs"
)

// doJSON выполняет запрос с JSON-телом (payload может быть nil).
// Непустой token передаётся как auth-cookie.
func doJSON(method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Cookie", "auth_token="+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

// PostJSON sends a JSON POST request. If token is non-empty, it is passed as auth cookie.
func PostJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPost, url, payload, token)
}

// PutJSON sends a JSON PUT request.
func PutJSON(url string, payload any, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodPut, url, payload, token)
}

// GetJSON sends a GET request.
func GetJSON(url string, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodGet, url, nil, token)
}

// Delete sends a DELETE request.
func Delete(url string, token string) (*http.Response, []byte, error) {
	return doJSON(http.MethodDelete, url, nil, token)
}

// PersistAuthFromResponse извлекает auth cookie из ответа и сохраняет его через файловое хранилище.
func PersistAuthFromResponse(resp *http.Response) error {
	store := fsrepo.AuthFSStore{}
	for _, c := range resp.Cookies() {
		if c.Name == "auth_token" && c.Value != "" {
			return store.Save(c.Value)
		}
	}
	return fmt.Errorf("no auth cookie in response")
}

// LoadToken читает сохранённый auth-токен; пустая строка — не залогинен.
func LoadToken() string {
	token, err := fsrepo.AuthFSStore{}.Load()
	if err != nil {
		return ""
	}
	return token
}
