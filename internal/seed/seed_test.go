package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/wonderchile/internal/auth"
	"github.com/ziadkadry99/wonderchile/internal/catalog"
	"github.com/ziadkadry99/wonderchile/internal/db"
)

type countingReporter struct {
	total, last int
	finished    bool
}

func (r *countingReporter) Start(total int)             { r.total = total }
func (r *countingReporter) Update(current int, _ string) { r.last = current }
func (r *countingReporter) Finish()                      { r.finished = true }

func setupDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestRun(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()
	rep := &countingReporter{}

	res, err := Run(ctx, database, rep)
	require.NoError(t, err)

	assert.Equal(t, len(SampleUsers), res.Users)
	assert.Equal(t, len(SampleTrips), res.Trips)
	assert.Equal(t, len(SamplePromotions), res.Promotions)
	assert.Equal(t, len(SampleContacts), res.Contacts)
	assert.Equal(t, rep.total, rep.last)
	assert.True(t, rep.finished)

	giras, err := catalog.NewStore(database).ListTrips(ctx, catalog.TripStudy)
	require.NoError(t, err)
	assert.Len(t, giras, 6)

	u, err := auth.NewStore(database).Authenticate(ctx, "juan@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleUser, u.Role)
}

func TestRunIsRepeatable(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	_, err := Run(ctx, database, nil)
	require.NoError(t, err)

	res, err := Run(ctx, database, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Total())

	for table, want := range map[string]int{
		"usuarios":    len(SampleUsers),
		"viajes":      len(SampleTrips),
		"promociones": len(SamplePromotions),
		"contactos":   len(SampleContacts),
	} {
		n, err := database.Count(table)
		require.NoError(t, err)
		assert.Equal(t, want, n, table)
	}
}

func TestBootstrap(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	require.NoError(t, Bootstrap(ctx, database, "Administrador", "admin@wonderchile.cl", "Admin123", nil))
	require.NoError(t, Bootstrap(ctx, database, "Administrador", "admin@wonderchile.cl", "otra-clave", nil))

	admin, err := auth.NewStore(database).Authenticate(ctx, "admin@wonderchile.cl", "Admin123")
	require.NoError(t, err, "second bootstrap must not replace the admin password")
	assert.True(t, admin.IsAdmin())

	n, err := database.Count("viajes")
	require.NoError(t, err)
	assert.Equal(t, len(StarterTrips), n)
}

func TestBootstrapKeepsExistingCatalog(t *testing.T) {
	database := setupDB(t)
	ctx := context.Background()

	_, _, err := catalog.NewStore(database).CreateTrip(ctx, catalog.NewTrip{Title: "Isla de Pascua"})
	require.NoError(t, err)

	require.NoError(t, Bootstrap(ctx, database, "Administrador", "admin@wonderchile.cl", "Admin123", nil))

	n, err := database.Count("viajes")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
