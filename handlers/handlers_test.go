package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	testutil.InitEnums()

	db := testutil.SetupSQLiteTestDB(t)
	repo := database.NewGormRepository(db)
	testutil.SeedUser(t, db, "maria", "secret123", models.RoleBarangayOfficial)

	mux := http.NewServeMux()
	NewAPIServer(repo, repo, repo, nil).SetupRoutes(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(target))
}

func indigencyPayload() map[string]interface{} {
	return map[string]interface{}{
		"LastName":      "Cruz",
		"FirstName":     "Ana",
		"MiddleName":    "Reyes",
		"Address":       "123 Mabini St",
		"Age":           "34",
		"Birthdate":     "1991-04-12",
		"ContactNumber": "09171234567",
		"Gender":        "Female",
		"Purpose":       "Medical Assistance",
		"issuedOn":      "2025-09-01",
		"userId":        7,
		"userName":      "Officer Reyes",
	}
}

func businessPermitPayload() map[string]interface{} {
	return map[string]interface{}{
		"LastName":        "Santos",
		"FirstName":       "Ben",
		"MiddleName":      "Lopez",
		"Address":         "45 Rizal Ave",
		"Age":             "41",
		"Birthdate":       "1984-02-20",
		"ContactNumber":   "09179876543",
		"Gender":          "Male",
		"BusinessName":    "Santos Sari-Sari Store",
		"BusinessAddress": "45 Rizal Ave",
		"Owner":           "Ben Santos",
		"BusinessNature":  "Retail",
		"Classification":  "Micro",
		"issuedOn":        "2025-09-01",
		"userId":          7,
		"userName":        "Officer Reyes",
	}
}

func TestIssuanceEndpoints(t *testing.T) {
	t.Run("Indigency_Success", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/api/indigency", indigencyPayload())
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.SubmissionResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Certificate of Indigency form submitted successfully", resp.Message)
		assert.NotZero(t, resp.ID)
		assert.Len(t, resp.Hash, models.IndigencyHashLength)
	})

	t.Run("Clearance_Success", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/api/clearance", indigencyPayload())
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.SubmissionResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Form submitted successfully", resp.Message)
		assert.Len(t, resp.Hash, models.ClearanceHashLength)
	})

	t.Run("BusinessPermit_Success", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/api/businesspermit", businessPermitPayload())
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.SubmissionResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Business Permit form submitted successfully", resp.Message)
		assert.Len(t, resp.Hash, models.BusinessPermitHashLength)
	})

	t.Run("MissingField_BadRequest", func(t *testing.T) {
		mux := newTestMux(t)
		payload := indigencyPayload()
		payload["Purpose"] = ""

		rec := doJSON(t, mux, http.MethodPost, "/api/indigency", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, "All required fields must be filled", resp["message"])
	})

	t.Run("ClearanceMissingField_BadRequest", func(t *testing.T) {
		mux := newTestMux(t)
		payload := indigencyPayload()
		payload["Purpose"] = ""

		rec := doJSON(t, mux, http.MethodPost, "/api/clearance", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, "All fields are required", resp["message"])
	})

	t.Run("BadContactNumber_BadRequest", func(t *testing.T) {
		mux := newTestMux(t)
		payload := indigencyPayload()
		payload["ContactNumber"] = "12345"

		rec := doJSON(t, mux, http.MethodPost, "/api/clearance", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("WrongMethod", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodGet, "/api/indigency", nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mux := newTestMux(t)

		req := httptest.NewRequest(http.MethodPost, "/api/indigency", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestValidateQREndpoint(t *testing.T) {
	t.Run("EmptyHash", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/api/validate-qr", map[string]string{"hash": ""})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.VerificationResult
		decodeBody(t, rec, &resp)
		assert.False(t, resp.IsValid)
		assert.Equal(t, "Hash code is required", resp.Message)
	})

	t.Run("UnknownHash", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/api/validate-qr", map[string]string{"hash": "deadbeef00"})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.VerificationResult
		decodeBody(t, rec, &resp)
		assert.False(t, resp.IsValid)
		assert.Equal(t, "Hash code not found in database", resp.Message)
	})

	t.Run("IssuedHashVerifies", func(t *testing.T) {
		mux := newTestMux(t)

		issueRec := doJSON(t, mux, http.MethodPost, "/api/indigency", indigencyPayload())
		require.Equal(t, http.StatusOK, issueRec.Code)
		var issued models.SubmissionResponse
		decodeBody(t, issueRec, &issued)

		rec := doJSON(t, mux, http.MethodPost, "/api/validate-qr", map[string]string{"hash": issued.Hash})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.VerificationResult
		decodeBody(t, rec, &resp)
		assert.True(t, resp.IsValid)
		assert.Equal(t, models.DocTypeIndigency, resp.DocumentType)
		require.NotNil(t, resp.Document)
		assert.Equal(t, issued.ID, resp.Document.ID)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/api/login", map[string]string{
			"name":     "maria",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.LoginResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Login successful", resp.Message)
		require.NotNil(t, resp.User)
		assert.Equal(t, "maria", resp.User.Name)
	})

	t.Run("MissingFields", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/api/login", map[string]string{"name": "maria"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Name and password are required", resp["message"])
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		mux := newTestMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/api/login", map[string]string{
			"name":     "maria",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Invalid credentials", resp["message"])
	})
}

func TestAuditEndpoints(t *testing.T) {
	t.Run("Logs", func(t *testing.T) {
		mux := newTestMux(t)

		issueRec := doJSON(t, mux, http.MethodPost, "/api/indigency", indigencyPayload())
		require.Equal(t, http.StatusOK, issueRec.Code)

		rec := doJSON(t, mux, http.MethodGet, "/api/audit-logs", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.AuditLogsResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Logs, 1)
		assert.Equal(t, models.ActionDocumentIssuance, resp.Logs[0].ActionType)
		assert.Equal(t, models.StatusSuccess, resp.Logs[0].Status)
	})

	t.Run("Summary", func(t *testing.T) {
		mux := newTestMux(t)

		issueRec := doJSON(t, mux, http.MethodPost, "/api/clearance", indigencyPayload())
		require.Equal(t, http.StatusOK, issueRec.Code)

		rec := doJSON(t, mux, http.MethodGet, "/api/audit-summary", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.AuditSummaryResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Audit summary for last 24 hours", resp.Message)
		require.Len(t, resp.Summary, 1)
		assert.Equal(t, models.ActionDocumentIssuance, resp.Summary[0].ActionType)
		assert.Equal(t, int64(1), resp.Summary[0].Count)
	})
}

func TestDashboardEndpoints(t *testing.T) {
	mux := newTestMux(t)

	issueRec := doJSON(t, mux, http.MethodPost, "/api/indigency", indigencyPayload())
	require.Equal(t, http.StatusOK, issueRec.Code)
	var issued models.SubmissionResponse
	decodeBody(t, issueRec, &issued)

	validRec := doJSON(t, mux, http.MethodPost, "/api/validate-qr", map[string]string{"hash": issued.Hash})
	require.Equal(t, http.StatusOK, validRec.Code)
	invalidRec := doJSON(t, mux, http.MethodPost, "/api/validate-qr", map[string]string{"hash": "bogus00001"})
	require.Equal(t, http.StatusOK, invalidRec.Code)

	t.Run("TotalDocuments", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/api/dashboard/total-documents", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.TotalDocumentsResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, int64(1), resp.Total)
	})

	t.Run("ValidDocuments", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/api/dashboard/valid-documents", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.ScanCountResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, int64(1), resp.Count)
	})

	t.Run("InvalidDocuments", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/api/dashboard/invalid-documents", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.ScanCountResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, int64(1), resp.Count)
	})

	t.Run("RecentAuditIssuance", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/api/dashboard/recent-audit-issuance", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.RecentIssuanceResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Recent, 1)
		assert.Equal(t, models.DocTypeIndigency, resp.Recent[0].DocumentType)
	})

	t.Run("FraudMonitor", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/api/dashboard/fraud-monitor", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.FraudMonitorResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.FraudAttempts, 2)
	})

	t.Run("RecentDocuments", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/api/recent-issuance", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.RecentDocumentsResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Recent, 1)
		assert.Equal(t, "indigency", resp.Recent[0].Type)
		assert.Equal(t, "Cruz", resp.Recent[0].LastName)
	})
}
