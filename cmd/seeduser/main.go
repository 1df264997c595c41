// cmd/seeduser/main.go: crea o actualiza el administrador inicial.
// Uso: go run ./cmd/seeduser -correo admin@mibollito.co -password 'Clave#2024'
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/IMANOL01277/BollitoPy/internal/config"
	"github.com/IMANOL01277/BollitoPy/internal/infra"
	"github.com/IMANOL01277/BollitoPy/internal/model"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	correo := flag.String("correo", "admin@mibollito.co", "correo del administrador")
	password := flag.String("password", "", "contraseña (obligatoria)")
	nombre := flag.String("nombre", "Administrador", "nombre visible")
	flag.Parse()

	if *password == "" {
		log.Fatal("falta -password")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	// NewDatabase also applies the schema, so this works on an empty database
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO usuarios (nombre, correo, password_hash, rol)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (correo) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    nombre = EXCLUDED.nombre,
		    rol = EXCLUDED.rol,
		    updated_at = now()
	`, *nombre, *correo, string(hash), model.RolAdministrador)

	if result.Error != nil {
		log.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("✅ Administrador '%s' creado/actualizado\n", *correo)
}
