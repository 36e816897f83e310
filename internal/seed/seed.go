// Package seed loads demo and first-boot data into the storefront database.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/auth"
	"github.com/ziadkadry99/wonderchile/internal/catalog"
	"github.com/ziadkadry99/wonderchile/internal/db"
	"github.com/ziadkadry99/wonderchile/internal/progress"
)

// Result counts the rows a Run inserted. Rows already present are skipped.
type Result struct {
	Users      int
	Trips      int
	Promotions int
	Contacts   int
}

// Total returns the number of inserted rows.
func (r Result) Total() int { return r.Users + r.Trips + r.Promotions + r.Contacts }

// Run inserts the sample data set. It is safe to run repeatedly: users,
// trips and promotions that already exist are left alone. Contacts are only
// seeded into an empty table.
func Run(ctx context.Context, database *db.DB, reporter progress.Reporter) (Result, error) {
	if reporter == nil {
		reporter = progress.Nop{}
	}
	users := auth.NewStore(database)
	cat := catalog.NewStore(database)

	var res Result
	total := len(SampleUsers) + len(SampleTrips) + len(SamplePromotions) + len(SampleContacts)
	step := 0
	advance := func(msg string) {
		step++
		reporter.Update(step, msg)
	}

	reporter.Start(total)
	defer reporter.Finish()

	for _, u := range SampleUsers {
		_, err := users.CreateUser(ctx, u)
		switch {
		case err == nil:
			res.Users++
		case errors.Is(err, auth.ErrEmailTaken):
		default:
			return res, fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
		advance("usuario " + u.Email)
	}

	for _, t := range SampleTrips {
		_, created, err := cat.CreateTrip(ctx, t)
		if err != nil {
			return res, fmt.Errorf("seeding trip %q: %w", t.Title, err)
		}
		if created {
			res.Trips++
		}
		advance("viaje " + t.Title)
	}

	for _, p := range SamplePromotions {
		created, err := cat.CreatePromotion(ctx, p)
		if err != nil {
			return res, fmt.Errorf("seeding promotion %q: %w", p.Title, err)
		}
		if created {
			res.Promotions++
		}
		advance("promoción " + p.Title)
	}

	existing, err := database.Count("contactos")
	if err != nil {
		return res, err
	}
	for _, c := range SampleContacts {
		if existing == 0 {
			if _, err := cat.CreateContact(ctx, c); err != nil {
				return res, fmt.Errorf("seeding contact %s: %w", c.Email, err)
			}
			res.Contacts++
		}
		advance("contacto " + c.Email)
	}

	return res, nil
}

// Bootstrap prepares a fresh database for serving: it creates the
// configured administrator if missing and loads the starter trips when the
// catalog is empty.
func Bootstrap(ctx context.Context, database *db.DB, adminName, adminEmail, adminPassword string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	created, err := auth.NewStore(database).EnsureAdmin(ctx, adminName, adminEmail, adminPassword)
	if err != nil {
		return fmt.Errorf("ensuring admin: %w", err)
	}
	if created {
		logger.Info("admin user created", zap.String("email", adminEmail))
	}

	n, err := database.Count("viajes")
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	cat := catalog.NewStore(database)
	for _, t := range StarterTrips {
		if _, _, err := cat.CreateTrip(ctx, t); err != nil {
			return fmt.Errorf("loading starter trips: %w", err)
		}
	}
	logger.Info("starter trips loaded", zap.Int("count", len(StarterTrips)))
	return nil
}
