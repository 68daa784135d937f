// cmd/genhash — deriva el hash PBKDF2 y la salt para una contraseña.
// Uso: go run ./cmd/genhash -password 'MiClave123'
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mekas12/AJHB/internal/crypto"
)

func main() {
	password := flag.String("password", "", "contraseña a hashear")
	salt := flag.String("salt", "", "salt hex existente (opcional)")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "uso: genhash -password <contraseña> [-salt <hex>]")
		os.Exit(2)
	}

	digest, usedSalt, err := crypto.HashPassword(*password, *salt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("password_hash: %s\nsalt: %s\n", digest, usedSalt)
}
