// Comando migrate aplica as migrações do banco e cria o primeiro tenant.
//
// Uso:
//
//	migrate up
//	migrate down
//	migrate steps N
//	migrate force V
//	migrate version
//	migrate bootstrap -name "BORA" -slug bora -email admin@bora.com -password ...
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/boraedu/bora-hub-api/infrastructure/database/migrations"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/infrastructure/repository"
	"github.com/boraedu/bora-hub-api/internal/config"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/boraedu/bora-hub-api/internal/usecases/authenticating"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	command, args := os.Args[1], os.Args[2:]
	if command == "bootstrap" {
		if err := bootstrap(ctx, cfg, conn, args); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar tenant inicial")
		}
		return
	}

	migrator, err := migrations.New(conn.DB)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar migrações")
	}

	if err := run(migrator, command, args); err != nil {
		logrus.WithError(err).Fatalf("Erro ao executar %s", command)
	}
}

func run(migrator *migrations.Migrator, command string, args []string) error {
	switch command {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "steps":
		n, err := intArg(args)
		if err != nil {
			return err
		}
		return migrator.Steps(n)
	case "force":
		v, err := intArg(args)
		if err != nil {
			return err
		}
		return migrator.Force(v)
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Versão atual do banco")
		return nil
	default:
		usage()
		return fmt.Errorf("comando desconhecido: %s", command)
	}
}

func intArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("informe um número")
	}
	return strconv.Atoi(args[0])
}

// bootstrap cria a organização e o administrador inicial
func bootstrap(ctx context.Context, cfg *config.Config, conn *postgres.Connection, args []string) error {
	fs := flag.NewFlagSet("bootstrap", flag.ContinueOnError)
	req := &domain.RegisterTenantRequest{}
	fs.StringVar(&req.Name, "name", os.Getenv("BOOTSTRAP_TENANT_NAME"), "nome da organização")
	fs.StringVar(&req.Slug, "slug", os.Getenv("BOOTSTRAP_TENANT_SLUG"), "slug da organização")
	fs.StringVar(&req.AdminName, "admin-name", envOr("BOOTSTRAP_ADMIN_NAME", "Admin"), "nome do administrador")
	fs.StringVar(&req.AdminLastname, "admin-lastname", envOr("BOOTSTRAP_ADMIN_LASTNAME", "BORA"), "sobrenome do administrador")
	fs.StringVar(&req.AdminEmail, "email", os.Getenv("BOOTSTRAP_ADMIN_EMAIL"), "e-mail do administrador")
	fs.StringVar(&req.AdminPassword, "password", os.Getenv("BOOTSTRAP_ADMIN_PASSWORD"), "senha do administrador")
	if err := fs.Parse(args); err != nil {
		return err
	}

	authenticator := authenticating.NewService(
		repository.NewUserRepository(conn),
		repository.NewTenantRepository(conn),
		conn,
		cfg,
	)

	tenant, admin, err := authenticator.RegisterTenant(ctx, req)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": tenant.ID,
		"slug":      tenant.Slug,
		"admin_id":  admin.ID,
	}).Info("Tenant inicial criado com sucesso")
	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: migrate up|down|steps N|force V|version|bootstrap [flags]")
}
