package domain

import "time"

type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	Salary       int64     `json:"salary"`
	AccountLevel int       `json:"account_level"`
	// TelegramChatID enables ride notifications when set.
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type SignUpInput struct {
	Username       string
	FirstName      string
	LastName       string
	Email          string
	Password       string
	Salary         int64
	TelegramChatID *int64
}
