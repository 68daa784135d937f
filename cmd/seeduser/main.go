// cmd/seeduser — crea o restablece un usuario directamente en el archivo SQLite.
// Uso: go run ./cmd/seeduser -username demo -password 'Demo1234' -role secretario
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/Mekas12/AJHB/internal/crypto"
	"github.com/Mekas12/AJHB/internal/infra"
	"github.com/Mekas12/AJHB/internal/model"
)

func main() {
	dbPath := flag.String("db", "ajhb_auth.db", "ruta del archivo SQLite")
	username := flag.String("username", "", "username del usuario")
	password := flag.String("password", "", "contraseña en claro")
	nombre := flag.String("nombre", "Usuario Demo", "nombre completo")
	role := flag.String("role", model.RolSecretario, "rol del usuario")
	permisos := flag.String("permisos", "ventas", "permisos (lista separada por comas o 'all')")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("se requieren -username y -password")
	}

	db, err := infra.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("error abriendo base de datos: %v", err)
	}

	digest, salt, err := crypto.HashPassword(*password, "")
	if err != nil {
		log.Fatalf("error hasheando contraseña: %v", err)
	}

	ctx := context.Background()
	var existing model.Usuario
	err = db.WithContext(ctx).Where("username = ?", *username).First(&existing).Error
	if err == nil {
		err = db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
			"password_hash": digest,
			"salt":          salt,
			"activo":        true,
		}).Error
		if err != nil {
			log.Fatalf("error actualizando usuario: %v", err)
		}
		fmt.Printf("usuario %q restablecido\n", *username)
		return
	}

	u := &model.Usuario{
		Username:       *username,
		PasswordHash:   digest,
		Salt:           salt,
		NombreCompleto: *nombre,
		Role:           *role,
		Permisos:       *permisos,
		Activo:         true,
		FechaCreacion:  time.Now(),
	}
	if err := db.WithContext(ctx).Create(u).Error; err != nil {
		log.Fatalf("error creando usuario: %v", err)
	}
	fmt.Printf("usuario %q creado con id %d\n", *username, u.ID)
}
