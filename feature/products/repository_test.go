package products

import (
	"context"
	"errors"
	"testing"
	"time"

	"eox-sync/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupRepo(t *testing.T) *Repository {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	repo := NewRepository(db)
	require.NoError(t, repo.Migrate(context.Background()))
	return repo
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func date(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func TestRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	missing, err := repo.FindByID(ctx, "WS-C2960-24T-S")
	require.NoError(t, err)
	assert.Nil(t, missing)

	p := &Product{ProductID: "WS-C2960-24T-S", Vendor: "Cisco Systems", EndOfSaleDate: date("2013-01-26")}
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID)

	found, err := repo.FindByID(ctx, "WS-C2960-24T-S")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "2013-01-26", found.EndOfSaleDate.Format("2006-01-02"))

	found.Description = "Catalyst 2960 24 10/100 + 2 1000BT LAN Base Image"
	found.LcStateSync = true
	require.NoError(t, repo.Update(ctx, found))

	again, err := repo.FindByID(ctx, "WS-C2960-24T-S")
	require.NoError(t, err)
	assert.Equal(t, found.Description, again.Description)
	assert.True(t, again.LcStateSync)

	// A second create of the same product id overwrites the row.
	dup := &Product{ProductID: "WS-C2960-24T-S", Description: "written by an overlapping run"}
	require.NoError(t, repo.Create(ctx, dup))
	assert.Equal(t, found.ID, dup.ID)

	again, err = repo.FindByID(ctx, "WS-C2960-24T-S")
	require.NoError(t, err)
	assert.Equal(t, "written by an overlapping run", again.Description)

	require.NoError(t, repo.Create(ctx, &Product{ProductID: "A-FIRST"}))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	list, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A-FIRST", list[0].ProductID)

	list, err = repo.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "WS-C2960-24T-S", list[0].ProductID)
}

func TestRepository_SaveMigrationOption(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	p := &Product{ProductID: "WS-C2960-24T-S"}
	require.NoError(t, repo.Create(ctx, p))

	first := &MigrationOption{ProductRef: p.ID, MigrationSource: "Cisco EoX Migration Option", ReplacementProductID: "WS-C2960X-24TS-L"}
	require.NoError(t, repo.SaveMigrationOption(ctx, first))

	second := &MigrationOption{ProductRef: p.ID, MigrationSource: "Cisco EoX Migration Option", ReplacementProductID: "WS-C2960L-24TS-LL", Comment: "updated"}
	require.NoError(t, repo.SaveMigrationOption(ctx, second))

	opts, err := repo.MigrationOptions(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "WS-C2960L-24TS-LL", opts[0].ReplacementProductID)
	assert.Equal(t, "updated", opts[0].Comment)
}

func TestRepository_FindByID_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `products`").WillReturnError(errors.New("connection reset"))

	p, err := repo.FindByID(context.Background(), "WS-C2960-24T-S")
	assert.Nil(t, p)
	assert.ErrorContains(t, err, "failed to find product WS-C2960-24T-S: connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Upsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `products` .* ON DUPLICATE KEY UPDATE").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT `id` FROM `products` WHERE product_id = ?").
		WithArgs("WS-C2960-24T-S").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	p := &Product{ProductID: "WS-C2960-24T-S"}
	require.NoError(t, repo.Create(context.Background(), p))
	assert.Equal(t, uint(7), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `products`").WillReturnError(errors.New("timeout"))

	_, err := repo.Count(context.Background())
	assert.ErrorContains(t, err, "failed to count products")
	assert.NoError(t, mock.ExpectationsWereMet())
}
