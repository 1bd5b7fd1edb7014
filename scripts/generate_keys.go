//go:build ignore

// This script generates a random signing key for session tokens.
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
	// 32 bytes = 256 bits, matching the HS256 key size
	secret, err := generateSecureKey(32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating session secret: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Add this to your .env file:")
	fmt.Println()
	fmt.Printf("SESSION_SECRET_KEY=%s\n", secret)
	fmt.Println()
	fmt.Println("Rotating the key invalidates every issued session token; liked recipes stay in the store.")
}
