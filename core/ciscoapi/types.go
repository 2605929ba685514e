package ciscoapi

import (
	"strings"
	"time"
)

// DateLayout is the layout of every date value returned by the EoX API.
const DateLayout = "2006-01-02"

// DateValue is a vendor date field.
type DateValue struct {
	Value      string `json:"value"`
	DateFormat string `json:"dateFormat"`
}

// Time parses the value as a UTC date. Empty or malformed values yield nil.
func (d DateValue) Time() *time.Time {
	v := strings.TrimSpace(d.Value)
	if v == "" {
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, v, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// MigrationDetails describes the vendor's recommended replacement.
type MigrationDetails struct {
	PIDActiveFlag           string `json:"PIDActiveFlag"`
	MigrationInformation    string `json:"MigrationInformation"`
	MigrationOption         string `json:"MigrationOption"`
	MigrationProductID      string `json:"MigrationProductId"`
	MigrationProductName    string `json:"MigrationProductName"`
	MigrationStrategy       string `json:"MigrationStrategy"`
	MigrationProductInfoURL string `json:"MigrationProductInfoURL"`
}

// EOXError is an error object, either for the whole response or a single record.
type EOXError struct {
	ErrorID          string `json:"ErrorID"`
	ErrorDescription string `json:"ErrorDescription"`
	ErrorDataType    string `json:"ErrorDataType"`
	ErrorDataValue   string `json:"ErrorDataValue"`
}

// Record is one product lifecycle entry.
type Record struct {
	EOLProductID                    string           `json:"EOLProductID"`
	ProductIDDescription            string           `json:"ProductIDDescription"`
	ProductBulletinNumber           string           `json:"ProductBulletinNumber"`
	LinkToProductBulletinURL        string           `json:"LinkToProductBulletinURL"`
	EOXExternalAnnouncementDate     DateValue        `json:"EOXExternalAnnouncementDate"`
	EndOfSaleDate                   DateValue        `json:"EndOfSaleDate"`
	EndOfSWMaintenanceReleases      DateValue        `json:"EndOfSWMaintenanceReleases"`
	EndOfSecurityVulSupportDate     DateValue        `json:"EndOfSecurityVulSupportDate"`
	EndOfRoutineFailureAnalysisDate DateValue        `json:"EndOfRoutineFailureAnalysisDate"`
	EndOfServiceContractRenewal     DateValue        `json:"EndOfServiceContractRenewal"`
	LastDateOfSupport               DateValue        `json:"LastDateOfSupport"`
	EndOfSvcAttachDate              DateValue        `json:"EndOfSvcAttachDate"`
	UpdatedTimeStamp                DateValue        `json:"UpdatedTimeStamp"`
	EOXMigrationDetails             MigrationDetails `json:"EOXMigrationDetails"`
	EOXInputType                    string           `json:"EOXInputType"`
	EOXInputValue                   string           `json:"EOXInputValue"`
	EOXError                        *EOXError        `json:"EOXError,omitempty"`
}

// Pagination is the paging block of a response.
type Pagination struct {
	PageIndex    int `json:"PageIndex"`
	LastIndex    int `json:"LastIndex"`
	TotalRecords int `json:"TotalRecords"`
	PageRecords  int `json:"PageRecords"`
}

// Response is the decoded body of an EOXByProductID call.
type Response struct {
	Pagination Pagination `json:"PaginationResponseRecord"`
	Records    []Record   `json:"EOXRecord"`
	EOXError   *EOXError  `json:"EOXError,omitempty"`
}

// Page is one fetched page with its error records removed.
type Page struct {
	Query     string
	Index     int
	LastIndex int
	Records   []Record
	// Dropped counts records that carried an EOXError.
	Dropped int
	// Raw is the unmodified response body.
	Raw []byte
}

// Last reports whether no further page follows.
func (p *Page) Last() bool {
	return p.Index >= p.LastIndex
}
