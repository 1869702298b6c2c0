package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"worksim/internal/db"
	"worksim/internal/domain"
	"worksim/internal/migrate"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	conn, err := db.Open(db.Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, migrate.Migrate(conn))
	return Store{DB: conn}
}

func testOrg() domain.Organization {
	return domain.Organization{
		OrganizationID: domain.NewID(),
		Name:           "Acme",
		Domain:         "acme.com",
		IsOrganization: true,
		CreatedAt:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBulkInsertAndCount(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	orgs := []map[string]any{testOrg().Record(), testOrg().Record()}
	require.NoError(t, st.BulkInsert(ctx, domain.CollectionOrganizations, domain.Columns(domain.CollectionOrganizations), orgs))

	n, err := st.Count(ctx, domain.CollectionOrganizations)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestBulkInsertEmpty(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.BulkInsert(context.Background(), domain.CollectionOrganizations, domain.Columns(domain.CollectionOrganizations), nil))
}

func TestBulkInsertColumnDrift(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	cols := domain.Columns(domain.CollectionOrganizations)

	short := []map[string]any{
		testOrg().Record(),
		{"organization_id": "only-one-column"},
	}
	err := st.BulkInsert(ctx, domain.CollectionOrganizations, cols, short)
	require.Error(t, err)
	require.Contains(t, err.Error(), "columns, want")

	renamed := testOrg().Record()
	delete(renamed, "domain")
	renamed["hostname"] = "acme.com"
	err = st.BulkInsert(ctx, domain.CollectionOrganizations, cols, []map[string]any{renamed})
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing column domain")

	// both transactions rolled back, nothing was written
	n, err := st.Count(ctx, domain.CollectionOrganizations)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestQuery(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	org := testOrg()
	require.NoError(t, st.BulkInsert(ctx, domain.CollectionOrganizations, domain.Columns(domain.CollectionOrganizations), []map[string]any{org.Record()}))

	rows, err := st.Query(ctx, "SELECT organization_id, name FROM organizations WHERE organization_id = ?", org.OrganizationID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, org.OrganizationID, rows[0]["organization_id"])
	require.Equal(t, "Acme", rows[0]["name"])
}

func TestMigrateIdempotent(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, migrate.Migrate(st.DB))

	var version int
	require.NoError(t, st.DB.QueryRow("SELECT version FROM schema_version").Scan(&version))
	require.Equal(t, 1, version)
}

func TestRecreateDropsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, migrate.Migrate(conn))
	st := Store{DB: conn}
	require.NoError(t, st.BulkInsert(context.Background(), domain.CollectionOrganizations, domain.Columns(domain.CollectionOrganizations), []map[string]any{testOrg().Record()}))
	require.NoError(t, conn.Close())

	conn, err = db.Recreate(db.Config{Path: path})
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, migrate.Migrate(conn))

	var n int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM organizations").Scan(&n))
	require.Zero(t, n)
}
