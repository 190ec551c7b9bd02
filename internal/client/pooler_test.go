package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/engine"
	"github.com/mmrzaf/tablefaker/internal/infra/targets/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPooler_SameClientForBareAndQualifiedNames(t *testing.T) {
	sess := newFakeSession()
	p := NewPooler(engine.NewFakeit(1), sess)
	ctx := context.Background()

	a, err := p.GetClient(ctx, "users")
	require.NoError(t, err)
	b, err := p.GetClient(ctx, "public.users")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, sess.lookups)
	assert.Equal(t, []string{"public.users"}, p.Identifiers())
}

func TestPooler_DistinctTables(t *testing.T) {
	sess := newFakeSession()
	sess.addTable("audit.users", domain.ColumnInfo{Name: "at", Type: "timestamptz"})
	p := NewPooler(engine.NewFakeit(1), sess)
	ctx := context.Background()

	a, err := p.GetClient(ctx, "public.users")
	require.NoError(t, err)
	b, err := p.GetClient(ctx, "audit.users")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, "audit.users", b.Identifier())
}

func TestPooler_InvalidIdentifiers(t *testing.T) {
	sess := newFakeSession()
	p := NewPooler(engine.NewFakeit(1), sess)

	for _, id := range []string{"", "a.b.c", ".users", "public.", "public.us ers"} {
		_, err := p.GetClient(context.Background(), id)
		assert.True(t, errors.Is(err, domain.ErrInvalidIdentifier), id)
	}
	assert.Equal(t, 0, sess.lookups)
}

func TestPooler_FailedInitializeIsNotCached(t *testing.T) {
	sess := newFakeSession()
	p := NewPooler(engine.NewFakeit(1), sess)
	ctx := context.Background()

	_, err := p.GetClient(ctx, "orders")
	var notFound *domain.TableNotFoundError
	require.True(t, errors.As(err, &notFound))

	sess.addTable("public.orders", domain.ColumnInfo{Name: "total", Type: "numeric"})
	c, err := p.GetClient(ctx, "orders")
	require.NoError(t, err)
	assert.True(t, c.RowDefinition().DefinitionExists("total"))
}

func TestPooler_DefaultSchemaOption(t *testing.T) {
	sess := newFakeSession()
	sess.addTable("main.users", domain.ColumnInfo{Name: "id", Type: "int8"})
	p := NewPooler(engine.NewFakeit(1), sess, WithDefaultSchema("main"))

	c, err := p.GetClient(context.Background(), "users")
	require.NoError(t, err)
	assert.Equal(t, "main.users", c.Identifier())
}

func TestPooler_SaveIntoSQLite(t *testing.T) {
	sess, err := sqlite.Open(filepath.Join(t.TempDir(), "faker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })
	_, err = sess.DB().Exec(`CREATE TABLE users (id int4, name varchar, ip inet, created_at timestamptz)`)
	require.NoError(t, err)

	p := NewPooler(engine.NewFakeit(11, engine.WithNow(fixedNow)), sess, WithDefaultSchema(sqlite.DefaultSchema))
	c, err := p.GetClient(context.Background(), "users")
	require.NoError(t, err)

	_, err = c.RowDefinition().SetFormatterType("name", "firstName")
	require.NoError(t, err)

	saved, err := c.Save(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, saved, 4)
	for _, rec := range saved {
		assert.Equal(t, []string{"id", "name", "ip", "created_at"}, rec.Names())
	}

	var count int
	require.NoError(t, sess.DB().QueryRow(`SELECT count(*) FROM users`).Scan(&count))
	assert.Equal(t, 4, count)
}

func TestPooler_SQLiteUnknownSchemaIsTableNotFound(t *testing.T) {
	sess, err := sqlite.Open(filepath.Join(t.TempDir(), "faker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })
	_, err = sess.DB().Exec(`CREATE TABLE users (id int4, name varchar)`)
	require.NoError(t, err)

	p := NewPooler(engine.NewFakeit(1), sess)
	for _, identifier := range []string{"audit.users", "users"} {
		_, err := p.GetClient(context.Background(), identifier)
		var notFound *domain.TableNotFoundError
		require.True(t, errors.As(err, &notFound), "%s: %v", identifier, err)
		assert.Equal(t, "users", notFound.Table)
	}
	assert.Empty(t, p.Identifiers())
}

func TestPooler_SaveIntoSQLiteQuotedColumns(t *testing.T) {
	sess, err := sqlite.Open(filepath.Join(t.TempDir(), "faker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })
	_, err = sess.DB().Exec(`CREATE TABLE "Members" ("memberId" int4, "display name" varchar)`)
	require.NoError(t, err)

	p := NewPooler(engine.NewFakeit(4, engine.WithNow(fixedNow)), sess, WithDefaultSchema(sqlite.DefaultSchema))
	c, err := p.GetClient(context.Background(), "Members")
	require.NoError(t, err)

	saved, err := c.Save(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, []string{"memberId", "display name"}, saved[0].Names())
}
