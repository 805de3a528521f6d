package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iByteABit256/MRN-Generator/internal/domain"
)

func TestNewGenerationRequest(t *testing.T) {
	t.Run("creates request successfully", func(t *testing.T) {
		req, err := domain.NewGenerationRequest("DK", "004700", "B1", "A", "24")

		require.NoError(t, err)
		assert.Equal(t, "DK", req.CountryCode)
		assert.Equal(t, "004700", req.DeclarationOffice)
		assert.Equal(t, "B1", req.ProcedureCategory)
		assert.Equal(t, "A", req.CombinedCategory)
		assert.Equal(t, "24", req.Year)
	})

	t.Run("creates request with only required fields", func(t *testing.T) {
		req, err := domain.NewGenerationRequest("DK", "", "", "", "24")

		require.NoError(t, err)
		assert.Equal(t, "DK", req.CountryCode)
		assert.Empty(t, req.DeclarationOffice)
		assert.Empty(t, req.ProcedureCategory)
		assert.Empty(t, req.CombinedCategory)
	})

	t.Run("uppercases letter fields", func(t *testing.T) {
		req, err := domain.NewGenerationRequest("dk", "", "b1", "a", "24")

		require.NoError(t, err)
		assert.Equal(t, "DK", req.CountryCode)
		assert.Equal(t, "B1", req.ProcedureCategory)
		assert.Equal(t, "A", req.CombinedCategory)
	})

	t.Run("rejects country code that is not 2 letters", func(t *testing.T) {
		for _, countryCode := range []string{"", "D", "DNK", "D1", "12"} {
			_, err := domain.NewGenerationRequest(countryCode, "", "", "", "24")

			require.Error(t, err, "country code %q", countryCode)
			domainErr, ok := domain.IsDomainError(err)
			require.True(t, ok)
			assert.Equal(t, domain.ErrCodeInvalidField, domainErr.Code)
			assert.Contains(t, err.Error(), "country code")
		}
	})

	t.Run("rejects declaration office that is not 6 digits", func(t *testing.T) {
		for _, office := range []string{"04700", "0047000", "00470A", "ABCDEF"} {
			_, err := domain.NewGenerationRequest("DK", office, "", "", "24")

			require.Error(t, err, "office %q", office)
			assert.Contains(t, err.Error(), "declaration office")
		}
	})

	t.Run("rejects malformed procedure category", func(t *testing.T) {
		for _, procedure := range []string{"1B", "B", "B12", "11", "B-"} {
			_, err := domain.NewGenerationRequest("DK", "", procedure, "", "24")

			require.Error(t, err, "procedure %q", procedure)
			assert.Contains(t, err.Error(), "procedure category")
		}
	})

	t.Run("accepts letter-digit and letter-letter procedure categories", func(t *testing.T) {
		for _, procedure := range []string{"B1", "AA", "Z9"} {
			_, err := domain.NewGenerationRequest("DK", "", procedure, "", "24")
			assert.NoError(t, err, "procedure %q", procedure)
		}
	})

	t.Run("rejects combined category without procedure category", func(t *testing.T) {
		_, err := domain.NewGenerationRequest("DK", "", "", "A", "24")

		require.Error(t, err)
		domainErr, ok := domain.IsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, domain.ErrCodeInvalidField, domainErr.Code)
		assert.Contains(t, err.Error(), "combined category")
	})

	t.Run("rejects combined category that is not a single letter", func(t *testing.T) {
		for _, combined := range []string{"AB", "1"} {
			_, err := domain.NewGenerationRequest("DK", "", "B1", combined, "24")

			require.Error(t, err, "combined %q", combined)
			assert.Contains(t, err.Error(), "combined category")
		}
	})

	t.Run("rejects year that is not 2 digits", func(t *testing.T) {
		for _, year := range []string{"", "2", "2024", "2A"} {
			_, err := domain.NewGenerationRequest("DK", "", "", "", year)

			require.Error(t, err, "year %q", year)
			assert.Contains(t, err.Error(), "year")
		}
	})
}
