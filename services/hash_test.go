package services

import (
	"testing"
	"time"

	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/stretchr/testify/assert"
)

func TestGenerateHash(t *testing.T) {
	payload := &models.CertificateRequest{
		LastName:  "Cruz",
		FirstName: "Ana",
		Address:   "123 Mabini St",
		Age:       "34",
		Birthdate: "1991-04-12",
		Gender:    "Female",
		Purpose:   "Medical Assistance",
		IssuedOn:  "2025-09-01",
	}
	issuedAt := time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)

	t.Run("Deterministic_SamePayloadAndTime", func(t *testing.T) {
		first, err := GenerateHash(payload, issuedAt, models.IndigencyHashLength)
		assert.NoError(t, err)

		second, err := GenerateHash(payload, issuedAt, models.IndigencyHashLength)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("DifferentTime_DifferentHash", func(t *testing.T) {
		first, err := GenerateHash(payload, issuedAt, models.IndigencyHashLength)
		assert.NoError(t, err)

		second, err := GenerateHash(payload, issuedAt.Add(time.Millisecond), models.IndigencyHashLength)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("DifferentPayload_DifferentHash", func(t *testing.T) {
		first, err := GenerateHash(payload, issuedAt, models.IndigencyHashLength)
		assert.NoError(t, err)

		other := *payload
		other.LastName = "Santos"
		second, err := GenerateHash(&other, issuedAt, models.IndigencyHashLength)
		assert.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("TruncatesToColumnWidth", func(t *testing.T) {
		hash, err := GenerateHash(payload, issuedAt, models.IndigencyHashLength)
		assert.NoError(t, err)
		assert.Len(t, hash, 32)

		hash, err = GenerateHash(payload, issuedAt, models.ClearanceHashLength)
		assert.NoError(t, err)
		assert.Len(t, hash, 10)
	})

	t.Run("ZeroLength_FullDigest", func(t *testing.T) {
		hash, err := GenerateHash(payload, issuedAt, 0)
		assert.NoError(t, err)
		assert.Len(t, hash, 64)
	})

	t.Run("HexEncoded", func(t *testing.T) {
		hash, err := GenerateHash(payload, issuedAt, models.IndigencyHashLength)
		assert.NoError(t, err)
		for _, r := range hash {
			assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f'),
				"hash must be lowercase hex, got %q", hash)
		}
	})
}
