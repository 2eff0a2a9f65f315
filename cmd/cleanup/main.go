// Command cleanup physically removes soft-deleted CRM records older than the
// configured retention period. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Tables are purged in dependency order: sub-entities, customers, leads,
// then persons no longer referenced anywhere.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/crm-backend/internal/adapter/postgres"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/customer"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/lead"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/person"
	"github.com/heartmarshall/crm-backend/internal/adapter/postgres/subentity"
	"github.com/heartmarshall/crm-backend/internal/app"
	"github.com/heartmarshall/crm-backend/internal/config"
)

type hardDeleter interface {
	HardDeleteOld(ctx context.Context, threshold time.Time) (int64, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -cfg.Cleanup.RetentionDays)

	steps := []struct {
		name string
		repo hardDeleter
	}{
		{"addresses", subentity.NewAddressRepo(pool)},
		{"contacts", subentity.NewContactRepo(pool)},
		{"documents", subentity.NewDocumentRepo(pool)},
		{"customers", customer.New(pool)},
		{"leads", lead.New(pool)},
		{"persons", person.New(pool)},
	}

	var total int64
	for _, s := range steps {
		deleted, err := s.repo.HardDeleteOld(ctx, threshold)
		if err != nil {
			logger.Error("hard delete failed",
				slog.String("table", s.name),
				slog.String("error", err.Error()),
				slog.Time("threshold", threshold),
			)
			os.Exit(1)
		}
		logger.Info("hard delete", slog.String("table", s.name), slog.Int64("deleted", deleted))
		total += deleted
	}

	logger.Info("hard delete completed",
		slog.Int64("deleted", total),
		slog.Time("threshold", threshold),
	)
}
