package products

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository persists products and their migration options.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the product tables.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&Product{}, &MigrationOption{})
}

// FindByID returns the product with the given product id, or nil when it
// does not exist.
func (r *Repository) FindByID(ctx context.Context, productID string) (*Product, error) {
	var p Product
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return &p, nil
}

// Create stores a new product. A row with the same product id written by a
// concurrent run is overwritten, and p.ID is set to the stored row.
func (r *Repository) Create(ctx context.Context, p *Product) error {
	db := r.db.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		UpdateAll: true,
	}).Create(p).Error
	if err != nil {
		return fmt.Errorf("failed to create product %s: %w", p.ProductID, err)
	}

	// MySQL does not report the id of a row updated by the upsert.
	var id uint
	if err := db.Model(&Product{}).Where("product_id = ?", p.ProductID).Pluck("id", &id).Error; err != nil {
		return fmt.Errorf("failed to load id of product %s: %w", p.ProductID, err)
	}
	p.ID = id
	return nil
}

// Update writes every field of an existing product.
func (r *Repository) Update(ctx context.Context, p *Product) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("failed to update product %s: %w", p.ProductID, err)
	}
	return nil
}

// Count returns the number of stored products.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&Product{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// List returns products ordered by product id.
func (r *Repository) List(ctx context.Context, offset, limit int) ([]Product, error) {
	var out []Product
	err := r.db.WithContext(ctx).Order("product_id").Offset(offset).Limit(limit).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return out, nil
}

// SaveMigrationOption inserts the option or updates the existing one for
// the same product and migration source.
func (r *Repository) SaveMigrationOption(ctx context.Context, opt *MigrationOption) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_ref"}, {Name: "migration_source"}},
		DoUpdates: clause.AssignmentColumns([]string{"replacement_product_id", "comment", "migration_product_info_url", "updated_at"}),
	}).Create(opt).Error
	if err != nil {
		return fmt.Errorf("failed to save migration option for product %d: %w", opt.ProductRef, err)
	}
	return nil
}

// MigrationOptions returns the options of a product.
func (r *Repository) MigrationOptions(ctx context.Context, productRef uint) ([]MigrationOption, error) {
	var out []MigrationOption
	err := r.db.WithContext(ctx).Where("product_ref = ?", productRef).Order("migration_source").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load migration options for product %d: %w", productRef, err)
	}
	return out, nil
}
