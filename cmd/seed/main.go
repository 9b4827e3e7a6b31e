// seed crea el esquema y carga datos de demostración: usuarios (admin,
// gerente, cajero), categorías, proveedores y un catálogo corto de productos.
//
// Uso: go run ./cmd/seed
// Lee la configuración de la base igual que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
	"github.com/tu-usuario/supermarket-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/supermarket-pos/pkg/config"
)

const schemaPath = "internal/infrastructure/postgres/migrations/001_init.sql"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	// Esquema (el script es idempotente: CREATE IF NOT EXISTS)
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		fail("leer %s: %v", schemaPath, err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fail("aplicar esquema: %v", err)
	}
	fmt.Println("esquema aplicado")

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	// Usuarios de demostración (password = username + "123")
	for _, u := range []struct{ username, fullName, role string }{
		{"admin", "Administrador General", entity.RoleAdmin},
		{"gerente", "Gerente de Tienda", entity.RoleManager},
		{"cajero1", "Cajero Turno Mañana", entity.RoleCashier},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.username+"123"), bcrypt.DefaultCost)
		if err != nil {
			fail("bcrypt: %v", err)
		}
		err = userRepo.Create(ctx, &entity.User{
			ID:           uuid.NewString(),
			Username:     u.username,
			PasswordHash: string(hash),
			FullName:     u.fullName,
			Role:         u.role,
		})
		if err != nil {
			fmt.Printf("usuario %s: %v (se omite)\n", u.username, err)
			continue
		}
		fmt.Printf("usuario %s creado\n", u.username)
	}

	categories := map[string]string{}
	for _, name := range []string{"Lácteos", "Abarrotes", "Bebidas", "Aseo"} {
		id := uuid.NewString()
		if err := categoryRepo.Create(ctx, &entity.Category{ID: id, Name: name}); err != nil {
			fmt.Printf("categoría %s: %v (se omite)\n", name, err)
			continue
		}
		categories[name] = id
	}

	supplierID := uuid.NewString()
	err = supplierRepo.Create(ctx, &entity.Supplier{
		ID:          supplierID,
		Name:        "Distribuidora La Central",
		ContactName: "Marta Ruiz",
		Phone:       "300 555 1234",
		Email:       "ventas@lacentral.example",
	})
	if err != nil {
		fmt.Printf("proveedor: %v (se omite)\n", err)
	}

	soon := time.Now().AddDate(0, 0, 20)
	products := []*entity.Product{
		{
			ID: uuid.NewString(), Name: "Leche entera 1L", Barcode: "7701001000011",
			Price: decimal.RequireFromString("4500"), Cost: decimal.RequireFromString("3200"),
			Quantity: 120, CategoryID: categories["Lácteos"], SupplierID: supplierID,
			ExpirationDate: &soon, LowStockThreshold: 20,
		},
		{
			ID: uuid.NewString(), Name: "Arroz blanco 500g", Barcode: "7701001000028",
			Price: decimal.RequireFromString("2800"), Cost: decimal.RequireFromString("2100"),
			Quantity: 200, CategoryID: categories["Abarrotes"], SupplierID: supplierID,
			LowStockThreshold: 30,
		},
		{
			ID: uuid.NewString(), Name: "Gaseosa cola 1.5L", Barcode: "7701001000035",
			Price: decimal.RequireFromString("6200"), Cost: decimal.RequireFromString("4500"),
			Quantity: 80, CategoryID: categories["Bebidas"], SupplierID: supplierID,
			LowStockThreshold: 15,
		},
		{
			ID: uuid.NewString(), Name: "Jabón en barra", Barcode: "7701001000042",
			Price: decimal.RequireFromString("3100"), Cost: decimal.RequireFromString("2300"),
			Quantity: 8, CategoryID: categories["Aseo"], SupplierID: supplierID,
			LowStockThreshold: 10,
		},
	}
	for _, p := range products {
		if err := productRepo.Create(ctx, p); err != nil {
			fmt.Printf("producto %s: %v (se omite)\n", p.Name, err)
			continue
		}
		fmt.Printf("producto %s creado\n", p.Name)
	}

	fmt.Println("seed completo")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
