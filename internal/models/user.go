package models

type User struct {
	ID        string `json:"user_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
	Role      string `json:"role,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// IsAdmin est dérivé du rôle, jamais stocké
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
