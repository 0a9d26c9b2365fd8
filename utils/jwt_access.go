package utils

import (
	"log"
	"os"
)

// JWTSecretKey is the shared secret of the external auth provider. Tokens are
// only ever validated here; issuing them is the provider's job.
var JWTSecretKey string

func InitJWT() {
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT Secret Key not set")
	}
}
