// Command hash-generator prints the bcrypt hash for a password, for seeding
// accounts (typically the first administrator) directly in the database.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hollis-dev/storefront-api/internal/service/auth"
)

func main() {
	password := flag.String("password", "", "password to hash")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: hash-generator -password <password>")
		os.Exit(2)
	}

	hash, err := auth.NewBcryptVerifier().Hash(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
