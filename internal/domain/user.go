package domain

import "time"

type Role string

const (
	RoleLandlord Role = "landlord"
	RoleTenant   Role = "tenant"
	RoleBoth     Role = "both"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleLandlord, RoleTenant, RoleBoth, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// Principal is the authenticated identity attached to a request after
// token verification. It is never persisted.
type Principal struct {
	ID    int64
	Email string
	Role  Role
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

type RegisterInput struct {
	Email          string
	Password       string
	Role           Role
	TelegramChatID *int64
}
