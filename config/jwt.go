package config

import (
	"os"
	"time"
)

const defaultJWTSecret = "your-secret-key-change-this-in-production"

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = defaultJWTSecret
	}
	JWTSecret = []byte(secret)
	JWTExpiration = 24 * time.Hour
}
