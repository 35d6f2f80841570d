//go:build ignore

// This script prints a session signing secret and an initial admin password.
// Run with: go run scripts/generate_keys.go
package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

func randomString(length int, encode func([]byte) string) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return encode(b), nil
}

func main() {
	// 32 bytes = 256 bits, the HS256 key size.
	secret, err := randomString(32, base64.StdEncoding.EncodeToString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating session secret: %v\n", err)
		os.Exit(1)
	}

	password, err := randomString(12, base64.RawURLEncoding.EncodeToString)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating admin password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("# Move Labels session settings")
	fmt.Printf("SESSION_SECRET=%s\n", secret)
	fmt.Println("ADMIN_USERNAME=admin")
	fmt.Printf("ADMIN_PASSWORD=%s\n", password)
	fmt.Println()
	fmt.Println("# The admin is created on first start only; change the password afterwards")
	fmt.Println("# by removing the user document and restarting with a new ADMIN_PASSWORD.")
}
