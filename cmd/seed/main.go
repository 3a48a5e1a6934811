// seed crea el SuperAdmin inicial si no existe ninguno (excepción de bootstrap:
// es el único usuario sin creador; todos los demás se crean por la vía
// autorizada de la API).
//
// Uso: SEED_ADMIN_EMAIL=... SEED_ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/agency-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/agency-pro/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'superadmin'`).Scan(&count); err != nil {
		fmt.Fprintf(os.Stderr, "consultar superadmins: %v\n", err)
		os.Exit(1)
	}
	if count > 0 {
		fmt.Println("ya existe un superadmin, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, company, contact, creator_id, incentive_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'superadmin', '', '', NULL, 0, $5, $5)`,
		uuid.New().String(), cfg.Seed.AdminName, cfg.Seed.AdminEmail, string(hash), now,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar superadmin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("superadmin creado: %s\n", cfg.Seed.AdminEmail)
}
