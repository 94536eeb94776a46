package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/monitoring"
)

// IssuanceService validates a submission, persists it with its content hash,
// and records the outcome in the audit log. One submit operation per
// document type.
type IssuanceService struct {
	docs  database.DocumentRepository
	audit *AuditService
}

// NewIssuanceService creates a new issuance service instance
func NewIssuanceService(docs database.DocumentRepository, audit *AuditService) *IssuanceService {
	return &IssuanceService{docs: docs, audit: audit}
}

// SubmitIndigency issues a Certificate of Indigency
func (s *IssuanceService) SubmitIndigency(ctx context.Context, req *models.CertificateRequest) (*models.SubmissionResult, error) {
	if err := validateCertificate(req, false); err != nil {
		return nil, err
	}

	hash, err := GenerateHash(req, time.Now(), models.IndigencyHashLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate hash: %w", err)
	}

	doc := &models.IndigencyCertificate{
		LastName:      req.LastName,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		Address:       req.Address,
		Age:           req.Age,
		Birthdate:     req.Birthdate,
		ContactNumber: req.ContactNumber,
		Gender:        req.Gender,
		Purpose:       req.Purpose,
		IssuedOn:      req.IssuedOn,
		Hash:          hash,
	}

	if err := s.docs.CreateIndigency(ctx, doc); err != nil {
		s.auditIssuance(ctx, models.DocTypeIndigency, nil, req.UserID, req.UserName, err)
		return nil, err
	}
	s.auditIssuance(ctx, models.DocTypeIndigency, &doc.ClearanceID, req.UserID, req.UserName, nil)

	// Read back by the inserted id so the returned hash is authoritative
	// even when the schema populates it independently
	storedHash := hash
	if stored, err := s.docs.FindIndigencyByID(ctx, doc.ClearanceID); err == nil {
		storedHash = stored.Hash
	} else {
		slog.Error("Failed to read back stored hash, using computed value",
			"documentType", models.DocTypeIndigency, "id", doc.ClearanceID, "error", err)
	}

	return &models.SubmissionResult{ID: doc.ClearanceID, Hash: storedHash}, nil
}

// SubmitClearance issues a Barangay Clearance
func (s *IssuanceService) SubmitClearance(ctx context.Context, req *models.CertificateRequest) (*models.SubmissionResult, error) {
	if err := validateCertificate(req, true); err != nil {
		if errors.Is(err, ErrValidation) {
			err = ErrClearanceValidation
		}
		return nil, err
	}

	hash, err := GenerateHash(req, time.Now(), models.ClearanceHashLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate hash: %w", err)
	}

	doc := &models.BarangayClearance{
		LastName:      req.LastName,
		FirstName:     req.FirstName,
		MiddleName:    req.MiddleName,
		Address:       req.Address,
		Age:           req.Age,
		Birthdate:     req.Birthdate,
		ContactNumber: req.ContactNumber,
		Gender:        req.Gender,
		Purpose:       req.Purpose,
		IssuedOn:      req.IssuedOn,
		Hash:          hash,
	}

	if err := s.docs.CreateClearance(ctx, doc); err != nil {
		s.auditIssuance(ctx, models.DocTypeClearance, nil, req.UserID, req.UserName, err)
		return nil, err
	}
	s.auditIssuance(ctx, models.DocTypeClearance, &doc.ClearanceID, req.UserID, req.UserName, nil)

	storedHash := hash
	if stored, err := s.docs.FindClearanceByID(ctx, doc.ClearanceID); err == nil {
		storedHash = stored.Hash
	} else {
		slog.Error("Failed to read back stored hash, using computed value",
			"documentType", models.DocTypeClearance, "id", doc.ClearanceID, "error", err)
	}

	return &models.SubmissionResult{ID: doc.ClearanceID, Hash: storedHash}, nil
}

// SubmitBusinessPermit issues a Business Permit
func (s *IssuanceService) SubmitBusinessPermit(ctx context.Context, req *models.BusinessPermitRequest) (*models.SubmissionResult, error) {
	if err := validateBusinessPermit(req); err != nil {
		return nil, err
	}

	hash, err := GenerateHash(req, time.Now(), models.BusinessPermitHashLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate hash: %w", err)
	}

	doc := &models.BusinessPermit{
		LastName:        req.LastName,
		FirstName:       req.FirstName,
		MiddleName:      req.MiddleName,
		Address:         req.Address,
		Age:             req.Age,
		Birthdate:       req.Birthdate,
		ContactNumber:   req.ContactNumber,
		Gender:          req.Gender,
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		Owner:           req.Owner,
		BusinessNature:  req.BusinessNature,
		Classification:  req.Classification,
		IssuedOn:        req.IssuedOn,
		Hash:            hash,
	}

	if err := s.docs.CreateBusinessPermit(ctx, doc); err != nil {
		s.auditIssuance(ctx, models.DocTypeBusinessPermit, nil, req.UserID, req.UserName, err)
		return nil, err
	}
	s.auditIssuance(ctx, models.DocTypeBusinessPermit, &doc.ID, req.UserID, req.UserName, nil)

	storedHash := hash
	if stored, err := s.docs.FindBusinessPermitByID(ctx, doc.ID); err == nil {
		storedHash = stored.Hash
	} else {
		slog.Error("Failed to read back stored hash, using computed value",
			"documentType", models.DocTypeBusinessPermit, "id", doc.ID, "error", err)
	}

	return &models.SubmissionResult{ID: doc.ID, Hash: storedHash}, nil
}

// auditIssuance records the outcome of an issuance attempt. The audit write
// happens strictly after the document store write has completed.
func (s *IssuanceService) auditIssuance(ctx context.Context, docType string, docID *uint, userID uint, userName string, storeErr error) {
	if userID == 0 {
		userID = 1
	}
	if userName == "" {
		userName = "System User"
	}

	method := models.CheckerMethodSystem
	entry := &models.LogEntry{
		ActionType:    models.ActionDocumentIssuance,
		DocumentID:    docID,
		DocumentType:  &docType,
		CheckerMethod: &method,
		UserID:        userID,
		UserName:      userName,
		UserRole:      models.RoleBarangayOfficial,
		Status:        models.StatusSuccess,
	}
	if storeErr != nil {
		entry.Status = models.StatusFailed
		entry.FailureReason = models.FailureReasonDatabaseError
	}

	s.audit.Append(ctx, entry)
	monitoring.RecordBusinessEvent(ctx, "document_issuance", storeErr == nil)
}

func validateCertificate(req *models.CertificateRequest, contactRequired bool) error {
	required := []string{
		req.LastName, req.FirstName, req.Address, req.Age,
		req.Birthdate, req.Gender, req.Purpose, req.IssuedOn,
	}
	if contactRequired {
		required = append(required, req.ContactNumber)
	}
	for _, field := range required {
		if field == "" {
			return ErrValidation
		}
	}
	return validateContactNumber(req.ContactNumber)
}

func validateBusinessPermit(req *models.BusinessPermitRequest) error {
	required := []string{
		req.LastName, req.FirstName, req.Address, req.Age, req.Birthdate,
		req.Gender, req.BusinessName, req.BusinessAddress, req.Owner,
		req.BusinessNature, req.Classification, req.IssuedOn,
	}
	for _, field := range required {
		if field == "" {
			return ErrValidation
		}
	}
	return validateContactNumber(req.ContactNumber)
}

// validateContactNumber enforces the 11-digit format at the service boundary
// whenever a contact number is supplied
func validateContactNumber(number string) error {
	if number == "" {
		return nil
	}
	if len(number) != 11 {
		return ErrInvalidContactNumber
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return ErrInvalidContactNumber
		}
	}
	return nil
}
