package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/monitoring"
)

// VerificationService checks an uploaded QR hash against all three document
// tables and records every attempt in the audit log.
type VerificationService struct {
	docs  database.DocumentRepository
	audit *AuditService
}

// NewVerificationService creates a new verification service instance
func NewVerificationService(docs database.DocumentRepository, audit *AuditService) *VerificationService {
	return &VerificationService{docs: docs, audit: audit}
}

// lookupResult carries one table's outcome out of the fan-out. order fixes
// the deterministic tie-break: indigency, then clearance, then business
// permit, regardless of which goroutine finishes first.
type lookupResult struct {
	order int
	doc   models.DocumentRecord
	err   error
}

// Verify resolves a hash to a VerificationResult. A not-found hash is a
// successful operation with IsValid=false; only store failures return an
// error. Exactly one audit entry is written per call, whatever the outcome.
func (s *VerificationService) Verify(ctx context.Context, hash string) (*models.VerificationResult, error) {
	if hash == "" {
		s.auditVerification(ctx, nil, nil, models.FailureReasonNoHash)
		return &models.VerificationResult{
			IsValid: false,
			Message: "Hash code is required",
		}, nil
	}

	// Each closure converts its typed pointer to the interface only on
	// success; returning a nil *IndigencyCertificate directly would yield a
	// non-nil interface value
	lookups := []func(context.Context, string) (models.DocumentRecord, error){
		func(ctx context.Context, h string) (models.DocumentRecord, error) {
			doc, err := s.docs.FindIndigencyByHash(ctx, h)
			if err != nil {
				return nil, err
			}
			return doc, nil
		},
		func(ctx context.Context, h string) (models.DocumentRecord, error) {
			doc, err := s.docs.FindClearanceByHash(ctx, h)
			if err != nil {
				return nil, err
			}
			return doc, nil
		},
		func(ctx context.Context, h string) (models.DocumentRecord, error) {
			doc, err := s.docs.FindBusinessPermitByHash(ctx, h)
			if err != nil {
				return nil, err
			}
			return doc, nil
		},
	}

	// The three lookups have no ordering dependency; run them concurrently
	results := make([]lookupResult, len(lookups))
	var wg sync.WaitGroup
	for i, lookup := range lookups {
		wg.Add(1)
		go func(order int, fn func(context.Context, string) (models.DocumentRecord, error)) {
			defer wg.Done()
			doc, err := fn(ctx, hash)
			results[order] = lookupResult{order: order, doc: doc, err: err}
		}(i, lookup)
	}
	wg.Wait()

	// First match wins in declared order; a store error in any table fails
	// the whole verification
	var match models.DocumentRecord
	for _, res := range results {
		if res.err != nil && !errors.Is(res.err, database.ErrNotFound) {
			s.auditVerification(ctx, nil, nil, models.FailureReasonValidationError)
			return nil, fmt.Errorf("database error during validation: %w", res.err)
		}
		if match == nil && res.doc != nil {
			match = res.doc
		}
	}

	if match == nil {
		s.auditVerification(ctx, nil, nil, models.FailureReasonHashNotFound)
		return &models.VerificationResult{
			IsValid: false,
			Message: "Hash code not found in database",
		}, nil
	}

	docID := match.RecordID()
	docType := match.DocumentType()
	s.auditVerification(ctx, &docID, &docType, "")

	summary := match.Summary()
	return &models.VerificationResult{
		IsValid:      true,
		Message:      "Document verified successfully",
		DocumentType: docType,
		Document:     &summary,
	}, nil
}

// auditVerification writes the single audit entry for a verification call.
// Verification is a public operation, so the actor is always the web user.
func (s *VerificationService) auditVerification(ctx context.Context, docID *uint, docType *string, failureReason string) {
	method := models.CheckerMethodQRUpload
	entry := &models.LogEntry{
		ActionType:    models.ActionQRVerification,
		DocumentID:    docID,
		DocumentType:  docType,
		CheckerMethod: &method,
		UserID:        1,
		UserName:      models.PublicWebUser,
		UserRole:      models.RolePublicUser,
		Status:        models.StatusSuccess,
	}
	if failureReason != "" {
		entry.Status = models.StatusFailed
		entry.FailureReason = failureReason
	}

	s.audit.Append(ctx, entry)
	monitoring.RecordBusinessEvent(ctx, "qr_verification", failureReason == "")
}
