package models

import "strings"

// DocumentRecord is the capability shared by all issued document variants.
// The three tables have structurally different column names, so callers that
// only need a normalized view (the verification path, the dashboard) work
// against this interface instead of branching per type.
type DocumentRecord interface {
	DocumentType() string
	RecordID() uint
	HashCode() string
	Summary() DocumentSummary
}

// DocumentSummary is the normalized projection of an issued document used in
// verification responses
type DocumentSummary struct {
	ID        uint   `json:"id"`
	Type      string `json:"type"`
	Hash      string `json:"hash"`
	IssuedOn  string `json:"issuedOn"`
	CreatedAt string `json:"createdAt"`

	Name    string `json:"name"`
	Address string `json:"address"`
	Age     string `json:"age,omitempty"`
	Purpose string `json:"purpose,omitempty"`
	Gender  string `json:"gender,omitempty"`

	BusinessName    string `json:"businessName,omitempty"`
	BusinessNature  string `json:"businessNature,omitempty"`
	BusinessAddress string `json:"businessAddress,omitempty"`
}

// IndigencyCertificate maps the certificate_of_indigency table.
// Column names follow the original schema exactly.
type IndigencyCertificate struct {
	ClearanceID   uint   `gorm:"column:clearance_id;primaryKey;autoIncrement" json:"id"`
	LastName      string `gorm:"column:LastName;type:varchar(100);not null" json:"LastName"`
	FirstName     string `gorm:"column:FirstName;type:varchar(100);not null" json:"FirstName"`
	MiddleName    string `gorm:"column:MiddleName;type:varchar(100)" json:"MiddleName"`
	Address       string `gorm:"column:Address;type:varchar(255);not null" json:"Address"`
	Age           string `gorm:"column:Age;type:varchar(10);not null" json:"Age"`
	Birthdate     string `gorm:"column:Birthdate;type:varchar(20);not null" json:"Birthdate"`
	ContactNumber string `gorm:"column:ContactNumber;type:varchar(20)" json:"ContactNumber"`
	Gender        string `gorm:"column:Gender;type:varchar(20);not null" json:"Gender"`
	Purpose       string `gorm:"column:Purpose;type:varchar(255);not null" json:"Purpose"`
	IssuedOn      string `gorm:"column:IssuedOn;type:varchar(20);not null" json:"IssuedOn"`
	Hash          string `gorm:"column:hash_code;type:char(32);not null;index:idx_indigency_hash" json:"hash_code"`

	BaseModel
}

// TableName sets the table name for IndigencyCertificate
func (IndigencyCertificate) TableName() string {
	return "certificate_of_indigency"
}

func (d *IndigencyCertificate) DocumentType() string { return DocTypeIndigency }
func (d *IndigencyCertificate) RecordID() uint       { return d.ClearanceID }
func (d *IndigencyCertificate) HashCode() string     { return d.Hash }

// Summary returns the normalized verification projection
func (d *IndigencyCertificate) Summary() DocumentSummary {
	return DocumentSummary{
		ID:        d.ClearanceID,
		Type:      DocTypeIndigency,
		Hash:      d.Hash,
		IssuedOn:  FormatIssueDate(d.IssuedOn),
		CreatedAt: d.CreatedAt.Format("2006-01-02 15:04:05"),
		Name:      joinName(d.FirstName, d.MiddleName, d.LastName),
		Address:   d.Address,
		Age:       d.Age,
		Purpose:   d.Purpose,
		Gender:    d.Gender,
	}
}

// BarangayClearance maps the barangay_clearance table
type BarangayClearance struct {
	ClearanceID   uint   `gorm:"column:clearance_id;primaryKey;autoIncrement" json:"id"`
	LastName      string `gorm:"column:LastName;type:varchar(100);not null" json:"LastName"`
	FirstName     string `gorm:"column:FirstName;type:varchar(100);not null" json:"FirstName"`
	MiddleName    string `gorm:"column:MiddleName;type:varchar(100)" json:"MiddleName"`
	Address       string `gorm:"column:Address;type:varchar(255);not null" json:"Address"`
	Age           string `gorm:"column:Age;type:varchar(10);not null" json:"Age"`
	Birthdate     string `gorm:"column:Birthdate;type:varchar(20);not null" json:"Birthdate"`
	ContactNumber string `gorm:"column:ContactNumber;type:varchar(20);not null" json:"ContactNumber"`
	Gender        string `gorm:"column:Gender;type:varchar(20);not null" json:"Gender"`
	Purpose       string `gorm:"column:Purpose;type:varchar(255);not null" json:"Purpose"`
	IssuedOn      string `gorm:"column:IssuedOn;type:varchar(20);not null" json:"IssuedOn"`
	Hash          string `gorm:"column:hash_code;type:char(10);not null;index:idx_clearance_hash" json:"hash_code"`

	BaseModel
}

// TableName sets the table name for BarangayClearance
func (BarangayClearance) TableName() string {
	return "barangay_clearance"
}

func (d *BarangayClearance) DocumentType() string { return DocTypeClearance }
func (d *BarangayClearance) RecordID() uint       { return d.ClearanceID }
func (d *BarangayClearance) HashCode() string     { return d.Hash }

// Summary returns the normalized verification projection
func (d *BarangayClearance) Summary() DocumentSummary {
	return DocumentSummary{
		ID:        d.ClearanceID,
		Type:      DocTypeClearance,
		Hash:      d.Hash,
		IssuedOn:  FormatIssueDate(d.IssuedOn),
		CreatedAt: d.CreatedAt.Format("2006-01-02 15:04:05"),
		Name:      joinName(d.FirstName, d.MiddleName, d.LastName),
		Address:   d.Address,
		Age:       d.Age,
		Purpose:   d.Purpose,
	}
}

// BusinessPermit maps the business_permit table. Unlike the two certificate
// tables this one uses snake_case columns throughout.
type BusinessPermit struct {
	ID              uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LastName        string `gorm:"column:last_name;type:varchar(100);not null" json:"LastName"`
	FirstName       string `gorm:"column:first_name;type:varchar(100);not null" json:"FirstName"`
	MiddleName      string `gorm:"column:middle_name;type:varchar(100)" json:"MiddleName"`
	Address         string `gorm:"column:address;type:varchar(255);not null" json:"Address"`
	Age             string `gorm:"column:age;type:varchar(10);not null" json:"Age"`
	Birthdate       string `gorm:"column:birthdate;type:varchar(20);not null" json:"Birthdate"`
	ContactNumber   string `gorm:"column:contact_number;type:varchar(20)" json:"ContactNumber"`
	Gender          string `gorm:"column:gender;type:varchar(20);not null" json:"Gender"`
	BusinessName    string `gorm:"column:business_name;type:varchar(255);not null" json:"BusinessName"`
	BusinessAddress string `gorm:"column:business_address;type:varchar(255);not null" json:"BusinessAddress"`
	Owner           string `gorm:"column:owner;type:varchar(255);not null" json:"Owner"`
	BusinessNature  string `gorm:"column:business_nature;type:varchar(255);not null" json:"BusinessNature"`
	Classification  string `gorm:"column:classification;type:varchar(100);not null" json:"Classification"`
	IssuedOn        string `gorm:"column:issued_on;type:varchar(20);not null" json:"issuedOn"`
	Hash            string `gorm:"column:hash_code;type:char(10);not null;index:idx_permit_hash" json:"hash_code"`

	BaseModel
}

// TableName sets the table name for BusinessPermit
func (BusinessPermit) TableName() string {
	return "business_permit"
}

func (d *BusinessPermit) DocumentType() string { return DocTypeBusinessPermit }
func (d *BusinessPermit) RecordID() uint       { return d.ID }
func (d *BusinessPermit) HashCode() string     { return d.Hash }

// Summary returns the normalized verification projection
func (d *BusinessPermit) Summary() DocumentSummary {
	return DocumentSummary{
		ID:              d.ID,
		Type:            DocTypeBusinessPermit,
		Hash:            d.Hash,
		IssuedOn:        FormatIssueDate(d.IssuedOn),
		CreatedAt:       d.CreatedAt.Format("2006-01-02 15:04:05"),
		Name:            joinName(d.FirstName, d.MiddleName, d.LastName),
		Address:         d.Address,
		BusinessName:    d.BusinessName,
		BusinessNature:  d.BusinessNature,
		BusinessAddress: d.BusinessAddress,
	}
}

// joinName builds "First Middle Last", skipping an empty middle name
func joinName(first, middle, last string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{first, middle, last} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
