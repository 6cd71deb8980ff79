//go:build ignore

// This script generates a random signing secret for admin tokens.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func main() {
	fmt.Println("=== Pizzeria Service Key Generator ===")
	fmt.Println()

	// HS256 admin token secret (32 bytes = 256 bits)
	adminSecret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating admin token secret: %v\n", err)
		os.Exit(1)
	}

	// Basic auth password for the swagger UI
	swaggerPass, err := generateSecureKey(18)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating swagger password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Admin panel")
	fmt.Printf("ADMIN_JWT_SECRET=%s\n", adminSecret)
	fmt.Println("ADMIN_PASSWORD=<choose a password>")
	fmt.Println()
	fmt.Println("# Swagger UI (optional)")
	fmt.Println("SWAGGER_USER=docs")
	fmt.Printf("SWAGGER_PASS=%s\n", swaggerPass)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these values to version control")
	fmt.Println("- The admin password is hashed with bcrypt at startup; rotate it by restarting")
}
