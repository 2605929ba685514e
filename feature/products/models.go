package products

import "time"

// Product is a hardware product tracked in the catalog, with its vendor
// lifecycle dates.
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ProductID   string `gorm:"column:product_id;size:512;uniqueIndex;not null" json:"product_id"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Vendor      string `gorm:"column:vendor;size:128" json:"vendor"`

	// EoxUpdateTimeStamp is the vendor's last-update date of the lifecycle data.
	EoxUpdateTimeStamp *time.Time `gorm:"column:eox_update_time_stamp" json:"eox_update_time_stamp"`

	EolExtAnnouncementDate        *time.Time `gorm:"column:eol_ext_announcement_date" json:"eol_ext_announcement_date"`
	EndOfSaleDate                 *time.Time `gorm:"column:end_of_sale_date" json:"end_of_sale_date"`
	EndOfNewServiceAttachmentDate *time.Time `gorm:"column:end_of_new_service_attachment_date" json:"end_of_new_service_attachment_date"`
	EndOfSwMaintenanceDate        *time.Time `gorm:"column:end_of_sw_maintenance_date" json:"end_of_sw_maintenance_date"`
	EndOfRoutineFailureAnalysis   *time.Time `gorm:"column:end_of_routine_failure_analysis" json:"end_of_routine_failure_analysis"`
	EndOfServiceContractRenewal   *time.Time `gorm:"column:end_of_service_contract_renewal" json:"end_of_service_contract_renewal"`
	EndOfSecVulnSuppDate          *time.Time `gorm:"column:end_of_sec_vuln_supp_date" json:"end_of_sec_vuln_supp_date"`
	EndOfSupportDate              *time.Time `gorm:"column:end_of_support_date" json:"end_of_support_date"`

	EolReferenceNumber string `gorm:"column:eol_reference_number;size:2048" json:"eol_reference_number"`
	EolReferenceURL    string `gorm:"column:eol_reference_url;size:1024" json:"eol_reference_url"`

	// LcStateSync marks lifecycle data maintained by the EoX synchronization.
	LcStateSync bool `gorm:"column:lc_state_sync;not null;default:false" json:"lc_state_sync"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name.
func (Product) TableName() string { return "products" }

// MigrationOption is a replacement recommendation for a product.
// There is at most one option per product and migration source.
type MigrationOption struct {
	ID                   uint   `gorm:"primaryKey" json:"id"`
	ProductRef           uint   `gorm:"column:product_ref;not null;uniqueIndex:idx_migration_product_source" json:"-"`
	MigrationSource      string `gorm:"column:migration_source;size:255;not null;uniqueIndex:idx_migration_product_source" json:"migration_source"`
	ReplacementProductID string `gorm:"column:replacement_product_id;size:512" json:"replacement_product_id"`
	Comment              string `gorm:"column:comment;type:text" json:"comment"`
	MigrationProductInfo string `gorm:"column:migration_product_info_url;size:1024" json:"migration_product_info_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name.
func (MigrationOption) TableName() string { return "product_migration_options" }

// ProductDetail is a product together with its migration options.
type ProductDetail struct {
	Product
	MigrationOptions []MigrationOption `json:"migration_options"`
}

// ProductPage is one page of the product listing.
type ProductPage struct {
	Items  []Product `json:"items"`
	Total  int64     `json:"total"`
	Offset int       `json:"offset"`
	Limit  int       `json:"limit"`
}

// RequiredColumns lists the columns the synchronizer writes, per table.
var RequiredColumns = map[string][]string{
	"products": {
		"product_id", "description", "vendor", "eox_update_time_stamp",
		"eol_ext_announcement_date", "end_of_sale_date", "end_of_new_service_attachment_date",
		"end_of_sw_maintenance_date", "end_of_routine_failure_analysis",
		"end_of_service_contract_renewal", "end_of_sec_vuln_supp_date", "end_of_support_date",
		"eol_reference_number", "eol_reference_url", "lc_state_sync",
	},
	"product_migration_options": {
		"product_ref", "migration_source", "replacement_product_id", "comment", "migration_product_info_url",
	},
}
