package eox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eox-sync/core/ciscoapi"
	"eox-sync/core/reconcile"
	"eox-sync/feature/products"
)

// MigrationSource names the migration options written by the synchronization.
const MigrationSource = "Cisco EoX Migration Option"

// ProductStore is the persistence the adapter reads and writes.
type ProductStore interface {
	FindByID(ctx context.Context, productID string) (*products.Product, error)
	Create(ctx context.Context, p *products.Product) error
	Update(ctx context.Context, p *products.Product) error
	SaveMigrationOption(ctx context.Context, opt *products.MigrationOption) error
}

// ProductAdapter reconciles Cisco EoX records against stored products.
type ProductAdapter struct {
	store  ProductStore
	vendor string
	now    func() time.Time
}

// NewProductAdapter creates a new adapter. Created products get vendor assigned.
func NewProductAdapter(store ProductStore, vendor string) *ProductAdapter {
	return &ProductAdapter{store: store, vendor: vendor, now: time.Now}
}

// Name returns the adapter name.
func (a *ProductAdapter) Name() string {
	return "products"
}

// ExtractKey returns the product id of a record.
func (a *ProductAdapter) ExtractKey(item reconcile.SourceItem) string {
	rec, ok := item.(ciscoapi.Record)
	if !ok {
		return ""
	}
	return strings.TrimSpace(rec.EOLProductID)
}

// Lookup returns the stored product, or nil.
func (a *ProductAdapter) Lookup(ctx context.Context, key string) (reconcile.DBItem, error) {
	p, err := a.store.FindByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return p, nil
}

type dateField struct {
	label string
	db    func(p *products.Product) **time.Time
	src   func(r *ciscoapi.Record) ciscoapi.DateValue
}

var dateFields = []dateField{
	{"eol_ext_announcement_date", func(p *products.Product) **time.Time { return &p.EolExtAnnouncementDate }, func(r *ciscoapi.Record) ciscoapi.DateValue { return r.EOXExternalAnnouncementDate }},
	{"end_of_sale_date", func(p *products.Product) **time.Time { return &p.EndOfSaleDate }, func(r *ciscoapi.Record) ciscoapi.DateValue { return r.EndOfSaleDate }},
	{"end_of_new_service_attachment_date", func(p *products.Product) **time.Time { return &p.EndOfNewServiceAttachmentDate }, func(r *ciscoapi.Record) ciscoapi.DateValue { return r.EndOfSvcAttachDate }},
	{"end_of_sw_maintenance_date", func(p *products.Product) **time.Time { return &p.EndOfSwMaintenanceDate }, func(r *ciscoapi.Record) ciscoapi.DateValue { return r.EndOfSWMaintenanceReleases }},
	{"end_of_routine_failure_analysis", func(p *products.Product) **time.Time { return &p.EndOfRoutineFailureAnalysis }, func(r *ciscoapi.Record) ciscoapi.DateValue { return r.EndOfRoutineFailureAnalysisDate }},
	{"end_of_service_contract_renewal", func(p *products.Product) **time.Time { return &p.EndOfServiceContractRenewal }, func(r *ciscoapi.Record) ciscoapi.DateValue { return r.EndOfServiceContractRenewal }},
	{"end_of_sec_vuln_supp_date", func(p *products.Product) **time.Time { return &p.EndOfSecVulnSuppDate }, func(r *ciscoapi.Record) ciscoapi.DateValue { return r.EndOfSecurityVulSupportDate }},
	{"end_of_support_date", func(p *products.Product) **time.Time { return &p.EndOfSupportDate }, func(r *ciscoapi.Record) ciscoapi.DateValue { return r.LastDateOfSupport }},
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "<nil>"
	}
	return t.Format(ciscoapi.DateLayout)
}

// CompareFields lists the lifecycle fields the record would change.
// Fields the record leaves empty are not compared. A stored timestamp
// older than the record's update timestamp is reported as well.
func (a *ProductAdapter) CompareFields(dbItem reconcile.DBItem, item reconcile.SourceItem) []string {
	p := dbItem.(*products.Product)
	rec := item.(ciscoapi.Record)

	var mismatch []string
	for _, f := range dateFields {
		src := f.src(&rec).Time()
		if src == nil {
			continue
		}
		if db := *f.db(p); formatDate(db) != formatDate(src) {
			mismatch = append(mismatch, fmt.Sprintf("%s: src=%s db=%s", f.label, formatDate(src), formatDate(db)))
		}
	}

	strs := []struct {
		label string
		src   string
		db    string
	}{
		{"description", rec.ProductIDDescription, p.Description},
		{"eol_reference_number", rec.ProductBulletinNumber, p.EolReferenceNumber},
		{"eol_reference_url", rec.LinkToProductBulletinURL, p.EolReferenceURL},
	}
	for _, s := range strs {
		src := strings.TrimSpace(s.src)
		if src != "" && src != s.db {
			mismatch = append(mismatch, fmt.Sprintf("%s: src=%q db=%q", s.label, src, s.db))
		}
	}

	if !p.LcStateSync {
		mismatch = append(mismatch, "lc_state_sync: src=true db=false")
	}

	if src := rec.UpdatedTimeStamp.Time(); src != nil {
		if p.EoxUpdateTimeStamp == nil || p.EoxUpdateTimeStamp.Before(*src) {
			mismatch = append(mismatch, fmt.Sprintf("eox_update_time_stamp: src=%s db=%s", formatDate(src), formatDate(p.EoxUpdateTimeStamp)))
		}
	}

	return mismatch
}

// Create stores a new product built from the record.
func (a *ProductAdapter) Create(ctx context.Context, item reconcile.SourceItem) error {
	rec := item.(ciscoapi.Record)
	p := &products.Product{
		ProductID: strings.TrimSpace(rec.EOLProductID),
		Vendor:    a.vendor,
	}
	a.applyRecord(p, &rec)

	if err := a.store.Create(ctx, p); err != nil {
		return err
	}
	return a.saveMigration(ctx, p, &rec)
}

// Update overwrites the stored product with the record.
func (a *ProductAdapter) Update(ctx context.Context, dbItem reconcile.DBItem, item reconcile.SourceItem) error {
	p := dbItem.(*products.Product)
	rec := item.(ciscoapi.Record)
	a.applyRecord(p, &rec)

	if err := a.store.Update(ctx, p); err != nil {
		return err
	}
	return a.saveMigration(ctx, p, &rec)
}

func (a *ProductAdapter) applyRecord(p *products.Product, rec *ciscoapi.Record) {
	for _, f := range dateFields {
		if src := f.src(rec).Time(); src != nil {
			*f.db(p) = src
		}
	}
	if v := strings.TrimSpace(rec.ProductIDDescription); v != "" {
		p.Description = v
	}
	if v := strings.TrimSpace(rec.ProductBulletinNumber); v != "" {
		p.EolReferenceNumber = v
	}
	if v := strings.TrimSpace(rec.LinkToProductBulletinURL); v != "" {
		p.EolReferenceURL = v
	}
	if p.Vendor == "" {
		p.Vendor = a.vendor
	}

	ts := rec.UpdatedTimeStamp.Time()
	if ts == nil {
		now := a.now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		ts = &today
	}
	p.EoxUpdateTimeStamp = ts
	p.LcStateSync = true
}

func (a *ProductAdapter) saveMigration(ctx context.Context, p *products.Product, rec *ciscoapi.Record) error {
	m := rec.EOXMigrationDetails
	replacement := strings.TrimSpace(m.MigrationProductID)
	if replacement == "" && strings.TrimSpace(m.MigrationInformation) == "" {
		return nil
	}

	comment := strings.TrimSpace(m.MigrationInformation)
	if s := strings.TrimSpace(m.MigrationStrategy); s != "" {
		if comment != "" {
			comment += "\n"
		}
		comment += s
	}

	return a.store.SaveMigrationOption(ctx, &products.MigrationOption{
		ProductRef:           p.ID,
		MigrationSource:      MigrationSource,
		ReplacementProductID: replacement,
		Comment:              comment,
		MigrationProductInfo: strings.TrimSpace(m.MigrationProductInfoURL),
	})
}
