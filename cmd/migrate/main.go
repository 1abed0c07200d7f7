// migrate administra el esquema MySQL de Nexus Coffee.
//
// Uso:
//
//	go run ./cmd/migrate up                aplica las migraciones pendientes
//	go run ./cmd/migrate status            conexión y migraciones aplicadas
//	go run ./cmd/migrate seed [--samples]  configuración, admin y datos de ejemplo
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql"
	"github.com/jhoicas/nexus-coffee/internal/infrastructure/mysql/migrations"
	"github.com/jhoicas/nexus-coffee/pkg/config"
	"github.com/jhoicas/nexus-coffee/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := mysql.NewDB(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a MySQL %s:%d/%s: %v\n", cfg.DB.Host, cfg.DB.Port, cfg.DB.Database, err)
		os.Exit(1)
	}
	defer db.Close()

	gw := mysql.NewGateway(db, log)
	m := migrations.New(gw, log)

	switch cmd {
	case "up":
		err = runUp(ctx, m)
	case "status":
		err = runStatus(ctx, gw, m, cfg.DB)
	case "seed":
		err = runSeed(ctx, m, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd, err)
		os.Exit(1)
	}
}

func runUp(ctx context.Context, m *migrations.Migrator) error {
	applied, err := m.Up(ctx)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		fmt.Println("Esquema al día, no hay migraciones pendientes.")
		return nil
	}
	fmt.Printf("Migraciones aplicadas: %v\n", applied)
	return nil
}

func runStatus(ctx context.Context, gw *mysql.Gateway, m *migrations.Migrator, db config.DBConfig) error {
	if err := gw.Ping(ctx); err != nil {
		return err
	}
	fmt.Printf("Conexión OK: %s@%s:%d/%s\n\n", db.User, db.Host, db.Port, db.Database)

	list, err := m.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range list {
		mark, when := "pendiente", ""
		if s.Applied {
			mark = "aplicada "
			if s.AppliedAt != nil {
				when = s.AppliedAt.Format(time.DateTime)
			}
		}
		fmt.Printf("%03d  %-30s  %s  %s\n", s.Version, s.Name, mark, when)
	}
	return nil
}

func runSeed(ctx context.Context, m *migrations.Migrator, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	samples := fs.Bool("samples", false, "insertar productos y clientes de ejemplo si las tablas están vacías")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rep, err := m.Seed(ctx, migrations.SeedOptions{Samples: *samples})
	if err != nil {
		return err
	}
	fmt.Printf("Configuración: %d claves nuevas\n", rep.ConfigInserted)
	fmt.Printf("Admin: %s\n", rep.Admin)
	if *samples {
		fmt.Printf("Productos de ejemplo: %d\n", rep.ProductsInserted)
		fmt.Printf("Clientes de ejemplo: %d\n", rep.CustomersInserted)
	}
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: migrate <up|status|seed [--samples]>")
}
