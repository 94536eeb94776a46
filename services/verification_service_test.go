package services

import (
	"context"
	"errors"
	"testing"

	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingDocStore wraps a working repository but fails one lookup, to
// exercise the store-error path.
type failingDocStore struct {
	database.DocumentRepository
	err error
}

func (f *failingDocStore) FindClearanceByHash(ctx context.Context, hash string) (*models.BarangayClearance, error) {
	return nil, f.err
}

func newVerificationFixture(t *testing.T) (*VerificationService, *IssuanceService, *testutil.MockAuditRepository) {
	t.Helper()
	testutil.InitEnums()

	db := testutil.SetupSQLiteTestDB(t)
	repo := database.NewGormRepository(db)
	auditRepo := testutil.NewMockAuditRepository()
	audit := NewAuditService(auditRepo)
	return NewVerificationService(repo, audit), NewIssuanceService(repo, audit), auditRepo
}

func TestVerify(t *testing.T) {
	t.Run("EmptyHash", func(t *testing.T) {
		svc, _, auditRepo := newVerificationFixture(t)

		result, err := svc.Verify(context.Background(), "")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, "Hash code is required", result.Message)

		entries := auditRepo.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, models.ActionQRVerification, entries[0].ActionType)
		assert.Equal(t, models.StatusFailed, entries[0].Status)
		assert.Equal(t, models.FailureReasonNoHash, entries[0].FailureReason)
	})

	t.Run("UnknownHash", func(t *testing.T) {
		svc, _, auditRepo := newVerificationFixture(t)

		result, err := svc.Verify(context.Background(), "deadbeef00")
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, "Hash code not found in database", result.Message)
		assert.Nil(t, result.Document)

		entries := auditRepo.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, models.StatusFailed, entries[0].Status)
		assert.Equal(t, models.FailureReasonHashNotFound, entries[0].FailureReason)
	})

	t.Run("MatchesIndigency", func(t *testing.T) {
		svc, issuance, auditRepo := newVerificationFixture(t)

		issued, err := issuance.SubmitIndigency(context.Background(), validCertificateRequest())
		require.NoError(t, err)
		auditRepo.Clear()

		result, err := svc.Verify(context.Background(), issued.Hash)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, "Document verified successfully", result.Message)
		assert.Equal(t, models.DocTypeIndigency, result.DocumentType)
		require.NotNil(t, result.Document)
		assert.Equal(t, issued.ID, result.Document.ID)
		assert.Equal(t, issued.Hash, result.Document.Hash)

		entries := auditRepo.Entries()
		require.Len(t, entries, 1)
		entry := entries[0]
		assert.Equal(t, models.ActionQRVerification, entry.ActionType)
		assert.Equal(t, models.StatusSuccess, entry.Status)
		require.NotNil(t, entry.DocumentID)
		assert.Equal(t, issued.ID, *entry.DocumentID)
		require.NotNil(t, entry.CheckerMethod)
		assert.Equal(t, models.CheckerMethodQRUpload, *entry.CheckerMethod)
		assert.Equal(t, "Web User", entry.UserName)
	})

	t.Run("RoundTripIdentityFields", func(t *testing.T) {
		svc, issuance, _ := newVerificationFixture(t)

		issued, err := issuance.SubmitIndigency(context.Background(), &models.CertificateRequest{
			LastName:  "Cruz",
			FirstName: "Ana",
			Address:   "123 Rizal St",
			Age:       "30",
			Birthdate: "1994-01-01",
			Gender:    "Female",
			Purpose:   "Medical Assistance",
			IssuedOn:  "2024-05-01",
		})
		require.NoError(t, err)
		require.Len(t, issued.Hash, 32)

		result, err := svc.Verify(context.Background(), issued.Hash)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, models.DocTypeIndigency, result.DocumentType)
		require.NotNil(t, result.Document)
		assert.Equal(t, "Ana Cruz", result.Document.Name)
		assert.Equal(t, "123 Rizal St", result.Document.Address)
		assert.Equal(t, "Medical Assistance", result.Document.Purpose)
		assert.Equal(t, "May 1, 2024", result.Document.IssuedOn)
	})

	t.Run("MatchesClearance", func(t *testing.T) {
		svc, issuance, auditRepo := newVerificationFixture(t)

		issued, err := issuance.SubmitClearance(context.Background(), validCertificateRequest())
		require.NoError(t, err)
		auditRepo.Clear()

		result, err := svc.Verify(context.Background(), issued.Hash)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, models.DocTypeClearance, result.DocumentType)
	})

	t.Run("MatchesBusinessPermit", func(t *testing.T) {
		svc, issuance, auditRepo := newVerificationFixture(t)

		issued, err := issuance.SubmitBusinessPermit(context.Background(), validBusinessPermitRequest())
		require.NoError(t, err)
		auditRepo.Clear()

		result, err := svc.Verify(context.Background(), issued.Hash)
		require.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Equal(t, models.DocTypeBusinessPermit, result.DocumentType)

		entries := auditRepo.Entries()
		require.Len(t, entries, 1)
	})

	t.Run("StoreError", func(t *testing.T) {
		testutil.InitEnums()
		db := testutil.SetupSQLiteTestDB(t)
		repo := database.NewGormRepository(db)
		auditRepo := testutil.NewMockAuditRepository()
		storeErr := errors.New("connection reset")
		svc := NewVerificationService(&failingDocStore{DocumentRepository: repo, err: storeErr}, NewAuditService(auditRepo))

		result, err := svc.Verify(context.Background(), "deadbeef00")
		assert.Error(t, err)
		assert.ErrorIs(t, err, storeErr)
		assert.Nil(t, result)

		// The failure is audited as an operational error, not as an
		// invalid document
		entries := auditRepo.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, models.StatusFailed, entries[0].Status)
		assert.Equal(t, models.FailureReasonValidationError, entries[0].FailureReason)
	})
}
