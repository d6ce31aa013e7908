package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrUnauthorized : le backend a refusé le token (401).
	ErrUnauthorized = errors.New("non authentifié auprès du backend")
	// ErrServerRefused : réponse 2xx mais success=false dans le corps.
	ErrServerRefused = errors.New("le serveur a refusé l'opération")
)

// Client encapsule tous les appels HTTP vers l'API backend Cedra.
// Le token est fourni par une closure pour toujours refléter la session
// courante, jamais une copie périmée.
type Client struct {
	baseURL  string
	http     *http.Client
	token    func() string
	clientID string
}

func New(baseURL string, token func() string, clientID string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		token:    token,
		clientID: clientID,
	}
}

// do exécute une requête JSON et décode la réponse dans out (si non nil).
// Un payload malformé ou incomplet se décode en valeurs zéro, il ne fait
// jamais échouer l'appel.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encodage requête %s: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("création requête %s: %w", path, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-ID", c.clientID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("appel %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("appel %s %s: statut %d (%s)", method, path, resp.StatusCode, readError(resp.Body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("décodage réponse %s: %w", path, err)
		}
	}
	return nil
}

// readError extrait le message d'erreur du backend, ou une chaîne vide.
func readError(r io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.NewDecoder(io.LimitReader(r, 4096)).Decode(&payload) != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
