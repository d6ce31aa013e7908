package api

import (
	"context"
	"fmt"
	"net/http"

	"cedra_front_end/internal/models"
)

// Login authentifie l'utilisateur auprès du backend et renvoie le token
// JWT et le profil associé.
func (c *Client) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var resp struct {
		Success bool         `json:"success"`
		Token   string       `json:"token"`
		User    *models.User `json:"user"`
		Error   string       `json:"error"`
	}

	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", nil, err
	}
	if !resp.Success || resp.Token == "" || resp.User == nil {
		if resp.Error != "" {
			return "", nil, fmt.Errorf("login refusé: %s", resp.Error)
		}
		return "", nil, ErrServerRefused
	}
	return resp.Token, resp.User, nil
}

// Register crée un compte client auprès du backend.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}
