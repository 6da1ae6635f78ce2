// seed inserts a demo tenant (one company account with a few leads and
// products) into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/paclead/platform-backend/internal/auth"
	"github.com/paclead/platform-backend/internal/domain"
	"github.com/paclead/platform-backend/internal/infrastructure/postgres"
)

const (
	seedEmail    = "demo@paclead.local"
	seedPassword = "demo-password"
	seedCNPJ     = "12345678000199"
)

var leads = []struct {
	name, phone, status, classification string
}{
	{"João Pereira", "+5511988880001", "new", "hot"},
	{"Ana Souza", "+5511988880002", "contacted", "warm"},
	{"Carlos Lima", "+5511988880003", "new", "cold"},
	{"Beatriz Castro", "+5511988880004", "qualified", "hot"},
}

var products = []struct {
	name, description string
	price             float64
}{
	{"Plano Starter", "Atendimento automatizado para até 200 leads/mês", 199.90},
	{"Plano Pro", "Atendimento + qualificação com agente dedicado", 499.90},
	{"Plano Enterprise", "Volume ilimitado e integrações sob medida", 1499.00},
}

func main() {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	users := postgres.NewUserRepository(pool)
	user, err := users.Create(ctx, &domain.User{
		Name:         "Demo Company",
		CNPJ:         seedCNPJ,
		Email:        seedEmail,
		PasswordHash: hash,
	})
	if err != nil {
		log.Fatalf("create user: %v", err)
	}
	fmt.Printf("user %s created (email=%s password=%s)\n", user.ID, seedEmail, seedPassword)

	for _, l := range leads {
		_, err := pool.Exec(ctx,
			`INSERT INTO leads (scope_id, name, phone, status, classification)
			 VALUES ($1, $2, $3, $4, $5)`,
			seedCNPJ, l.name, l.phone, l.status, l.classification)
		if err != nil {
			log.Fatalf("insert lead %q: %v", l.name, err)
		}
	}
	fmt.Printf("%d leads inserted\n", len(leads))

	productRepo := postgres.NewProductRepository(pool)
	for _, p := range products {
		_, err := productRepo.Create(ctx, &domain.Product{
			ScopeID:     seedCNPJ,
			Name:        p.name,
			Description: p.description,
			Price:       p.price,
		})
		if err != nil {
			log.Fatalf("insert product %q: %v", p.name, err)
		}
	}
	fmt.Printf("%d products inserted\n", len(products))
}
