package model

import "time"

type AdminLogin struct {
	Password string `json:"password" validate:"required"`
}

type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
