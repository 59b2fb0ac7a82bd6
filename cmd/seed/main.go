// seed carga el menú desde un CSV y, opcionalmente, crea el usuario administrador inicial.
//
// Uso: go run ./cmd/seed -menu menu.csv [-latin1] [-admin-email admin@rb.co -admin-password secreto]
//
// El CSV usa ';' como separador y columnas Nombre;Precio;Tipo;Descripcion;Imagen, con
// una fila de encabezado. Los exportes de Excel en Windows vienen en ISO-8859-1: usar -latin1.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
	"github.com/jhoicas/restaurante-rb-api/internal/infrastructure/postgres"
	"github.com/jhoicas/restaurante-rb-api/pkg/config"
	"github.com/jhoicas/restaurante-rb-api/pkg/logger"
	"github.com/jhoicas/restaurante-rb-api/pkg/sanitize"
)

const menuColumns = 5

func main() {
	menuPath := flag.String("menu", "", "ruta del CSV del menú (vacío = no cargar productos)")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	adminEmail := flag.String("admin-email", os.Getenv("SEED_ADMIN_EMAIL"), "correo del administrador inicial")
	adminPassword := flag.String("admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "contraseña del administrador inicial")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *menuPath != "" {
		f, err := os.Open(*menuPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *menuPath).Msg("abrir CSV")
		}
		var r io.Reader = f
		if *latin1 {
			r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
		}
		products, err := parseMenu(r)
		f.Close()
		if err != nil {
			log.Fatal().Err(err).Msg("leer menú")
		}

		repo := postgres.NewProductRepository(pool)
		for _, p := range products {
			if err := repo.Create(ctx, p); err != nil {
				log.Fatal().Err(err).Str("producto", p.Name).Msg("insertar producto")
			}
		}
		log.Info().Int("productos", len(products)).Msg("menú cargado")
	}

	if *adminEmail != "" {
		if err := seedAdmin(ctx, postgres.NewUserRepository(pool), *adminEmail, *adminPassword); err != nil {
			log.Fatal().Err(err).Msg("crear administrador")
		}
		log.Info().Str("email", sanitize.Email(*adminEmail)).Msg("administrador listo")
	}
}

// parseMenu lee el CSV del menú. Las filas con nombre vacío se omiten; un precio no
// numérico o no positivo aborta la carga completa indicando la línea.
func parseMenu(r io.Reader) ([]*entity.Product, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []*entity.Product
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv línea %d: %w", line, err)
		}
		if line == 1 {
			continue
		}
		for len(rec) < menuColumns {
			rec = append(rec, "")
		}
		name := sanitize.Text(rec[0])
		if name == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[1]), ",", "."))
		if err != nil || !price.IsPositive() {
			return nil, fmt.Errorf("csv línea %d: precio %q inválido", line, rec[1])
		}
		out = append(out, &entity.Product{
			Name:        name,
			Price:       price,
			Type:        sanitize.Text(rec[2]),
			Description: sanitize.Text(rec[3]),
			Image:       strings.TrimSpace(rec[4]),
		})
	}
	return out, nil
}

type adminStore interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
}

// seedAdmin crea el administrador o, si el correo ya existe, lo promueve a administrador
// sin tocar su contraseña.
func seedAdmin(ctx context.Context, users adminStore, email, password string) error {
	email = sanitize.Email(email)
	if !sanitize.ValidEmail(email) {
		return fmt.Errorf("%w: correo %q", domain.ErrInvalidInput, email)
	}

	existing, err := users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.Role == entity.RoleAdmin {
			return nil
		}
		existing.Role = entity.RoleAdmin
		return users.Update(ctx, existing)
	}

	if sanitize.Len(password) < 6 {
		return fmt.Errorf("%w: la contraseña debe tener al menos 6 caracteres", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash contraseña: %w", err)
	}
	return users.Create(ctx, &entity.User{
		FirstName:    "Administrador",
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
	})
}
