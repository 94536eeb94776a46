package models

// CertificateRequest is the submission payload shared by the indigency and
// clearance endpoints. Field names match the form keys the frontend posts.
type CertificateRequest struct {
	LastName      string `json:"LastName"`
	FirstName     string `json:"FirstName"`
	MiddleName    string `json:"MiddleName"`
	Address       string `json:"Address"`
	Age           string `json:"Age"`
	Birthdate     string `json:"Birthdate"`
	ContactNumber string `json:"ContactNumber"`
	Gender        string `json:"Gender"`
	Purpose       string `json:"Purpose"`
	IssuedOn      string `json:"issuedOn"`

	// Issuing staff identity, recorded on the audit entry
	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
}

// BusinessPermitRequest is the business permit submission payload
type BusinessPermitRequest struct {
	LastName        string `json:"LastName"`
	FirstName       string `json:"FirstName"`
	MiddleName      string `json:"MiddleName"`
	Address         string `json:"Address"`
	Age             string `json:"Age"`
	Birthdate       string `json:"Birthdate"`
	ContactNumber   string `json:"ContactNumber"`
	Gender          string `json:"Gender"`
	BusinessName    string `json:"BusinessName"`
	BusinessAddress string `json:"BusinessAddress"`
	Owner           string `json:"Owner"`
	BusinessNature  string `json:"BusinessNature"`
	Classification  string `json:"Classification"`
	IssuedOn        string `json:"issuedOn"`

	UserID   uint   `json:"userId"`
	UserName string `json:"userName"`
}

// SubmissionResult is returned by the issuance service
type SubmissionResult struct {
	ID   uint   `json:"id"`
	Hash string `json:"hashcode"`
}

// SubmissionResponse is the HTTP response for a successful issuance
type SubmissionResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
	Hash    string `json:"hashcode"`
}

// VerifyRequest is the QR verification payload
type VerifyRequest struct {
	Hash string `json:"hash"`
}

// VerificationResult is the transient outcome of a verification call. A
// not-found result is a successful operation with IsValid=false; operational
// failures are returned as errors by the service, not encoded here.
type VerificationResult struct {
	IsValid      bool             `json:"isValid"`
	Message      string           `json:"message"`
	DocumentType string           `json:"documentType,omitempty"`
	Document     *DocumentSummary `json:"document,omitempty"`
}

// LoginRequest is the staff login payload
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// AuditLogsResponse wraps the full audit log listing
type AuditLogsResponse struct {
	Logs []LogEntry `json:"logs"`
}

// AuditSummaryRow is one (action, status) count within the summary window
type AuditSummaryRow struct {
	ActionType string `json:"action_type"`
	Status     string `json:"status"`
	Count      int64  `json:"count"`
}

// AuditSummaryResponse wraps the windowed audit summary
type AuditSummaryResponse struct {
	Message string            `json:"message"`
	Summary []AuditSummaryRow `json:"summary"`
}

// TotalDocumentsResponse is the dashboard total across all document tables
type TotalDocumentsResponse struct {
	Total int64 `json:"total"`
}

// ScanCountResponse is the dashboard valid/invalid scan count
type ScanCountResponse struct {
	Count int64 `json:"count"`
}

// RecentIssuanceEntry is one row of the dashboard recent-issuance feed,
// sourced from the audit log
type RecentIssuanceEntry struct {
	DocumentType string `json:"DocumentType"`
	DateIssued   string `json:"DateIssued"`
}

// RecentIssuanceResponse wraps the dashboard recent-issuance feed
type RecentIssuanceResponse struct {
	Recent []RecentIssuanceEntry `json:"recent"`
}

// FraudMonitorEntry is one QR verification attempt shown on the fraud monitor
type FraudMonitorEntry struct {
	DocumentType  string `json:"DocumentType"`
	CheckerMethod string `json:"CheckerMethod"`
	DateIssued    string `json:"DateIssued"`
	Time          string `json:"Time"`
	Status        string `json:"Status"`
}

// FraudMonitorResponse wraps the fraud monitor listing
type FraudMonitorResponse struct {
	FraudAttempts []FraudMonitorEntry `json:"fraudAttempts"`
}

// RecentDocumentEntry is one row of the merged recent-documents feed drawn
// directly from the three document tables
type RecentDocumentEntry struct {
	Type       string `json:"type"`
	LastName   string `json:"LastName"`
	FirstName  string `json:"FirstName"`
	MiddleName string `json:"MiddleName"`
	Address    string `json:"Address"`
	Purpose    string `json:"Purpose"`
	IssuedOn   string `json:"IssuedOn"`
}

// RecentDocumentsResponse wraps the merged recent-documents feed
type RecentDocumentsResponse struct {
	Recent []RecentDocumentEntry `json:"recent"`
}
