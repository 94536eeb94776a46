package models

// Audit action types. The strings match the stored audit history and the
// labels shown in the audit viewer.
const (
	ActionLogin            = "Login"
	ActionDocumentIssuance = "Document Issuance"
	ActionQRVerification   = "QR Verification"
)

// Audit entry outcomes
const (
	StatusSuccess = "Success"
	StatusFailed  = "Failed"
)

// Document type labels
const (
	DocTypeIndigency      = "Certificate of Indigency"
	DocTypeClearance      = "Barangay Clearance"
	DocTypeBusinessPermit = "Business Permit"
)

// Checker methods recorded on audit entries
const (
	CheckerMethodSystem   = "System"
	CheckerMethodQRUpload = "QR Upload"
)

// Failure reasons. FailureReasonNone is the sentinel stored when the entry
// succeeded. "Hash not found in database" marks a document-invalid result,
// "Database error during validation" marks an operational failure; the two
// must stay distinct strings so the audit history can tell them apart.
const (
	FailureReasonNone            = "N/A"
	FailureReasonDatabaseError   = "Database Error"
	FailureReasonInvalidLogin    = "Invalid Credentials"
	FailureReasonNoHash          = "No hash provided"
	FailureReasonHashNotFound    = "Hash not found in database"
	FailureReasonValidationError = "Database error during validation"
)

// Stored hash_code column widths per document type. The indigency table uses
// CHAR(32) while clearance and business permit use CHAR(10); printed QR codes
// encode those exact strings, so the widths are preserved.
const (
	IndigencyHashLength      = 32
	ClearanceHashLength      = 10
	BusinessPermitHashLength = 10
)

// User roles recorded on audit entries
const (
	RoleBarangayOfficial = "Barangay Official"
	RolePublicUser       = "Public User"
	RoleUnknown          = "Unknown"
)

// PublicWebUser is the actor recorded for unauthenticated verification calls
const PublicWebUser = "Web User"
