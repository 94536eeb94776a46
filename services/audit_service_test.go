package services

import (
	"context"
	"testing"

	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditAppend(t *testing.T) {
	testutil.InitEnums()

	t.Run("FillsDefaults", func(t *testing.T) {
		auditRepo := testutil.NewMockAuditRepository()
		svc := NewAuditService(auditRepo)

		svc.Append(context.Background(), &models.LogEntry{
			ActionType: models.ActionLogin,
			UserName:   "maria",
			UserRole:   models.RoleBarangayOfficial,
			Status:     models.StatusSuccess,
		})

		entries := auditRepo.Entries()
		require.Len(t, entries, 1)
		assert.False(t, entries[0].Timestamp.IsZero())
		assert.Equal(t, models.FailureReasonNone, entries[0].FailureReason)
	})

	t.Run("RejectsInvalidActionType", func(t *testing.T) {
		auditRepo := testutil.NewMockAuditRepository()
		svc := NewAuditService(auditRepo)

		svc.Append(context.Background(), &models.LogEntry{
			ActionType: "Bulk Export",
			UserName:   "maria",
			UserRole:   models.RoleBarangayOfficial,
			Status:     models.StatusSuccess,
		})

		assert.Empty(t, auditRepo.Entries())
	})

	t.Run("SwallowsWriteFailure", func(t *testing.T) {
		auditRepo := testutil.NewMockAuditRepository()
		auditRepo.CreateErr = assert.AnError
		svc := NewAuditService(auditRepo)

		// Must not panic or propagate
		svc.Append(context.Background(), &models.LogEntry{
			ActionType: models.ActionLogin,
			UserName:   "maria",
			UserRole:   models.RoleBarangayOfficial,
			Status:     models.StatusSuccess,
		})

		assert.Empty(t, auditRepo.Entries())
	})
}

type capturingPublisher struct {
	events []map[string]string
	err    error
}

func (p *capturingPublisher) PublishAuditEvent(ctx context.Context, fields map[string]string) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, fields)
	return nil
}

func TestAuditStreamMirror(t *testing.T) {
	testutil.InitEnums()

	entry := func() *models.LogEntry {
		docType := models.DocTypeClearance
		docID := uint(4)
		return &models.LogEntry{
			ActionType:   models.ActionDocumentIssuance,
			DocumentID:   &docID,
			DocumentType: &docType,
			UserID:       7,
			UserName:     "Officer Reyes",
			UserRole:     models.RoleBarangayOfficial,
			Status:       models.StatusSuccess,
		}
	}

	t.Run("PublishesStoredEntries", func(t *testing.T) {
		auditRepo := testutil.NewMockAuditRepository()
		pub := &capturingPublisher{}
		svc := NewAuditServiceWithPublisher(auditRepo, pub)

		svc.Append(context.Background(), entry())

		require.Len(t, pub.events, 1)
		fields := pub.events[0]
		assert.Equal(t, models.ActionDocumentIssuance, fields["actionType"])
		assert.Equal(t, "4", fields["documentId"])
		assert.Equal(t, models.DocTypeClearance, fields["documentType"])
		assert.Equal(t, "7", fields["userId"])
		assert.NotEmpty(t, fields["entryId"])
		assert.NotEmpty(t, fields["timestamp"])
	})

	t.Run("DoesNotPublishRejectedEntries", func(t *testing.T) {
		auditRepo := testutil.NewMockAuditRepository()
		auditRepo.CreateErr = assert.AnError
		pub := &capturingPublisher{}
		svc := NewAuditServiceWithPublisher(auditRepo, pub)

		svc.Append(context.Background(), entry())
		assert.Empty(t, pub.events)
	})

	t.Run("PublishFailureIsSwallowed", func(t *testing.T) {
		auditRepo := testutil.NewMockAuditRepository()
		pub := &capturingPublisher{err: assert.AnError}
		svc := NewAuditServiceWithPublisher(auditRepo, pub)

		svc.Append(context.Background(), entry())

		// The database write still happened
		assert.Len(t, auditRepo.Entries(), 1)
	})
}

func TestAuditSummarize(t *testing.T) {
	testutil.InitEnums()

	auditRepo := testutil.NewMockAuditRepository()
	svc := NewAuditService(auditRepo)

	for i := 0; i < 3; i++ {
		svc.Append(context.Background(), &models.LogEntry{
			ActionType: models.ActionQRVerification,
			UserName:   "Web User",
			UserRole:   models.RolePublicUser,
			Status:     models.StatusSuccess,
		})
	}
	svc.Append(context.Background(), &models.LogEntry{
		ActionType:    models.ActionQRVerification,
		UserName:      "Web User",
		UserRole:      models.RolePublicUser,
		Status:        models.StatusFailed,
		FailureReason: models.FailureReasonHashNotFound,
	})

	rows, err := svc.Summarize(context.Background(), 24)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	counts := make(map[string]int64)
	for _, row := range rows {
		counts[row.Status] = row.Count
		assert.Equal(t, models.ActionQRVerification, row.ActionType)
	}
	assert.Equal(t, int64(3), counts[models.StatusSuccess])
	assert.Equal(t, int64(1), counts[models.StatusFailed])
}
