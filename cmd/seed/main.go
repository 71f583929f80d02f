// seed puebla un entorno de desarrollo: cinco bases, un usuario Admin
// (admin@military.local / admin123), diez activos y compras iniciales.
// Es idempotente: lo que ya existe se omite.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/armasset/ledger-api/internal/domain/entity"
	"github.com/armasset/ledger-api/internal/domain/repository"
	"github.com/armasset/ledger-api/internal/infrastructure/postgres"
	"github.com/armasset/ledger-api/pkg/config"
	"github.com/armasset/ledger-api/pkg/logger"
)

var baseNames = []struct{ name, location string }{
	{"Base Central HQ", "Capital"},
	{"Base Norte", "Región Norte"},
	{"Base Sur", "Región Sur"},
	{"Base Este", "Región Este"},
	{"Base Oeste", "Región Oeste"},
}

var assetTypes = []string{
	entity.AssetTypeVehicle,
	entity.AssetTypeWeapon,
	entity.AssetTypeAmmunition,
	entity.AssetTypeEquipment,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	baseRepo := postgres.NewBaseRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)

	now := time.Now()

	// Bases
	var bases []*entity.Base
	for _, b := range baseNames {
		existing, err := baseRepo.GetByName(ctx, b.name)
		if err != nil {
			log.Fatal().Err(err).Str("base", b.name).Msg("consultar base")
		}
		if existing != nil {
			bases = append(bases, existing)
			continue
		}
		base := &entity.Base{ID: uuid.New().String(), Name: b.name, Location: b.location, CreatedAt: now}
		if err := baseRepo.Create(ctx, base); err != nil {
			log.Fatal().Err(err).Str("base", b.name).Msg("crear base")
		}
		log.Info().Str("base", base.Name).Msg("base creada")
		bases = append(bases, base)
	}

	// Usuario Admin
	admin, err := userRepo.FindByEmail(ctx, "admin@military.local")
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if admin == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password")
		}
		admin = &entity.User{
			ID:           uuid.New().String(),
			Name:         "System Admin",
			Email:        "admin@military.local",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("crear admin")
		}
		log.Info().Str("email", admin.Email).Msg("admin creado")
	}

	// Activos: diez, rotando categorías y bases
	var assets []*entity.Asset
	for i := 0; i < 10; i++ {
		serial := fmt.Sprintf("ASSET-%03d", i+1)
		existing, err := assetRepo.GetBySerial(ctx, serial)
		if err != nil {
			log.Fatal().Err(err).Str("serial", serial).Msg("consultar activo")
		}
		if existing != nil {
			assets = append(assets, existing)
			continue
		}
		asset := &entity.Asset{
			ID:          uuid.New().String(),
			Type:        assetTypes[i%len(assetTypes)],
			Serial:      serial,
			Description: fmt.Sprintf("Activo de prueba %d", i+1),
			BaseID:      bases[i%len(bases)].ID,
			CreatedAt:   now,
		}
		if err := assetRepo.Create(ctx, asset); err != nil {
			log.Fatal().Err(err).Str("serial", serial).Msg("crear activo")
		}
		log.Info().Str("serial", asset.Serial).Str("type", asset.Type).Msg("activo creado")
		assets = append(assets, asset)
	}

	// Compras iniciales para que los saldos no arranquen en cero.
	// Solo si la tabla está vacía: una compra es un evento, no un dato de referencia.
	existing, err := purchaseRepo.List(ctx, repository.MovementFilter{Limit: 1})
	if err != nil {
		log.Fatal().Err(err).Msg("consultar compras")
	}
	if len(existing) == 0 {
		for i := 0; i < 5; i++ {
			asset := assets[i%len(assets)]
			purchase := &entity.Purchase{
				ID:        uuid.New().String(),
				AssetID:   asset.ID,
				BaseID:    asset.BaseID,
				Quantity:  int64(50 + i*10),
				Date:      now.AddDate(0, 0, -(i + 1)),
				CreatedBy: admin.ID,
				CreatedAt: now,
			}
			if err := purchaseRepo.Create(ctx, purchase); err != nil {
				log.Fatal().Err(err).Msg("crear compra")
			}
			log.Info().Str("asset", asset.Serial).Int64("quantity", purchase.Quantity).Msg("compra creada")
		}
	}

	log.Info().Msg("seed completado")
}
