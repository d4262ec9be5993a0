package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Generates an admin API key for the route service. The key is shown once;
// only its sha256 digest goes into the environment.
func main() {
	key, hash := generateAdminKey()

	fmt.Println("═══════════════════════════════════════════════════")
	fmt.Println("Admin API Key Generated")
	fmt.Println("═══════════════════════════════════════════════════")
	fmt.Printf("\nAPI Key (show ONLY ONCE):\n%s\n", key)
	fmt.Printf("\nDigest (configure the server with this):\nexport ADMIN_API_KEY_HASH=%s\n", hash)
	fmt.Println("═══════════════════════════════════════════════════")
	fmt.Println("\nSave the API key now! You won't be able to see it again.")
}

func generateAdminKey() (key, hash string) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		panic(err)
	}
	randomStr := hex.EncodeToString(randomBytes)

	// Checksum catches truncated copy-paste before the key reaches a server.
	checksumBytes := sha256.Sum256([]byte(randomStr))
	checksum := hex.EncodeToString(checksumBytes[:2])

	key = fmt.Sprintf("rk_%s_%s", randomStr, checksum)

	hashBytes := sha256.Sum256([]byte(key))
	hash = hex.EncodeToString(hashBytes[:])

	return
}
