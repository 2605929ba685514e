package eox

import (
	"context"
	"errors"
	"testing"
	"time"

	"eox-sync/core/ciscoapi"
	"eox-sync/feature/products"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	products   map[string]*products.Product
	migrations []products.MigrationOption
	nextID     uint
	createErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{products: map[string]*products.Product{}}
}

func (m *memoryStore) FindByID(ctx context.Context, productID string) (*products.Product, error) {
	p, ok := m.products[productID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memoryStore) Create(ctx context.Context, p *products.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	p.ID = m.nextID
	cp := *p
	m.products[p.ProductID] = &cp
	return nil
}

func (m *memoryStore) Update(ctx context.Context, p *products.Product) error {
	cp := *p
	m.products[p.ProductID] = &cp
	return nil
}

func (m *memoryStore) SaveMigrationOption(ctx context.Context, opt *products.MigrationOption) error {
	m.migrations = append(m.migrations, *opt)
	return nil
}

func date(s string) ciscoapi.DateValue {
	return ciscoapi.DateValue{Value: s, DateFormat: "YYYY-MM-DD"}
}

func sampleRecord() ciscoapi.Record {
	return ciscoapi.Record{
		EOLProductID:             " WS-C2960-24TT-L ",
		ProductIDDescription:     "Catalyst 2960 24 10/100 + 2 1000BT LAN Base Image",
		ProductBulletinNumber:    "EOL9999",
		LinkToProductBulletinURL: "https://www.cisco.com/eol9999.html",
		EndOfSaleDate:            date("2014-10-30"),
		LastDateOfSupport:        date("2019-10-31"),
		UpdatedTimeStamp:         date("2016-01-15"),
		EOXMigrationDetails: ciscoapi.MigrationDetails{
			MigrationProductID:   "WS-C2960X-24TS-LL",
			MigrationInformation: "Catalyst 2960-X",
			MigrationStrategy:    "Replace",
		},
	}
}

func TestProductAdapter_ExtractKey(t *testing.T) {
	a := NewProductAdapter(newMemoryStore(), "Cisco Systems")

	assert.Equal(t, "WS-C2960-24TT-L", a.ExtractKey(sampleRecord()))
	assert.Equal(t, "", a.ExtractKey("not a record"))
}

func TestProductAdapter_CreateAndCompare(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	a := NewProductAdapter(store, "Cisco Systems")
	rec := sampleRecord()

	missing, err := a.Lookup(ctx, "WS-C2960-24TT-L")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, a.Create(ctx, rec))

	p := store.products["WS-C2960-24TT-L"]
	require.NotNil(t, p)
	assert.Equal(t, "Cisco Systems", p.Vendor)
	assert.True(t, p.LcStateSync)
	assert.Equal(t, "EOL9999", p.EolReferenceNumber)
	assert.Equal(t, "2014-10-30", p.EndOfSaleDate.Format(ciscoapi.DateLayout))
	assert.Equal(t, "2019-10-31", p.EndOfSupportDate.Format(ciscoapi.DateLayout))
	assert.Equal(t, "2016-01-15", p.EoxUpdateTimeStamp.Format(ciscoapi.DateLayout))
	assert.Nil(t, p.EndOfSwMaintenanceDate)

	require.Len(t, store.migrations, 1)
	assert.Equal(t, MigrationSource, store.migrations[0].MigrationSource)
	assert.Equal(t, "WS-C2960X-24TS-LL", store.migrations[0].ReplacementProductID)
	assert.Equal(t, "Catalyst 2960-X\nReplace", store.migrations[0].Comment)
	assert.Equal(t, p.ID, store.migrations[0].ProductRef)

	found, err := a.Lookup(ctx, "WS-C2960-24TT-L")
	require.NoError(t, err)
	assert.Empty(t, a.CompareFields(found, rec))
}

func TestProductAdapter_CompareFields(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(p *products.Product)
		record func(r *ciscoapi.Record)
		want   []string
	}{
		{
			name:   "changed end of sale date",
			record: func(r *ciscoapi.Record) { r.EndOfSaleDate = date("2015-01-01") },
			want:   []string{"end_of_sale_date: src=2015-01-01 db=2014-10-30"},
		},
		{
			name:   "empty source date is not compared",
			record: func(r *ciscoapi.Record) { r.EndOfSaleDate = date("") },
		},
		{
			name:   "empty description is not compared",
			record: func(r *ciscoapi.Record) { r.ProductIDDescription = "" },
		},
		{
			name:   "manually maintained product",
			mutate: func(p *products.Product) { p.LcStateSync = false },
			want:   []string{"lc_state_sync: src=true db=false"},
		},
		{
			name: "stale timestamp",
			mutate: func(p *products.Product) {
				old := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
				p.EoxUpdateTimeStamp = &old
			},
			want: []string{"eox_update_time_stamp: src=2016-01-15 db=2010-01-01"},
		},
		{
			name: "newer stored timestamp",
			mutate: func(p *products.Product) {
				newer := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
				p.EoxUpdateTimeStamp = &newer
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			a := NewProductAdapter(store, "Cisco Systems")
			require.NoError(t, a.Create(ctx, sampleRecord()))

			p := store.products["WS-C2960-24TT-L"]
			if tt.mutate != nil {
				tt.mutate(p)
			}
			rec := sampleRecord()
			if tt.record != nil {
				tt.record(&rec)
			}

			assert.Equal(t, tt.want, a.CompareFields(p, rec))
		})
	}
}

func TestProductAdapter_UpdateWithoutTimestampUsesToday(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	a := NewProductAdapter(store, "Cisco Systems")
	a.now = func() time.Time { return time.Date(2026, 3, 4, 17, 30, 0, 0, time.UTC) }

	require.NoError(t, a.Create(ctx, sampleRecord()))
	p := store.products["WS-C2960-24TT-L"]
	p.Vendor = "Other"

	rec := sampleRecord()
	rec.UpdatedTimeStamp = date("")
	rec.ProductIDDescription = "Updated description"
	require.NoError(t, a.Update(ctx, p, rec))

	stored := store.products["WS-C2960-24TT-L"]
	assert.Equal(t, "Updated description", stored.Description)
	assert.Equal(t, "Other", stored.Vendor)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), *stored.EoxUpdateTimeStamp)
}

func TestProductAdapter_CreateError(t *testing.T) {
	store := newMemoryStore()
	store.createErr = errors.New("duplicate key")
	a := NewProductAdapter(store, "Cisco Systems")

	err := a.Create(context.Background(), sampleRecord())

	assert.EqualError(t, err, "duplicate key")
	assert.Empty(t, store.migrations)
}
