package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditlines/internal/disclosure/models"
)

func TestValidateCoherence(t *testing.T) {
	tests := []struct {
		name       string
		currency   models.Currency
		period     models.Period
		duration   int
		wantFields []string
	}{
		{
			name:     "overnight without duration is valid",
			currency: models.CurrencyUSD,
			period:   models.PeriodOvernight,
			duration: 0,
		},
		{
			name:       "overnight with duration is invalid",
			currency:   models.CurrencyUSD,
			period:     models.PeriodOvernight,
			duration:   1,
			wantFields: []string{"periodDuration"},
		},
		{
			name:       "months without duration is invalid",
			currency:   models.CurrencyEUR,
			period:     models.PeriodMonths,
			duration:   0,
			wantFields: []string{"periodDuration"},
		},
		{
			name:     "months with allowed duration is valid",
			currency: models.CurrencyEUR,
			period:   models.PeriodMonths,
			duration: 3,
		},
		{
			name:       "months with out-of-set duration is invalid",
			currency:   models.CurrencyEUR,
			period:     models.PeriodMonths,
			duration:   5,
			wantFields: []string{"periodDuration"},
		},
		{
			name:     "weeks with duration 1 is valid",
			currency: models.CurrencyGBP,
			period:   models.PeriodWeeks,
			duration: 1,
		},
		{
			name:       "weeks with duration 2 is invalid",
			currency:   models.CurrencyGBP,
			period:     models.PeriodWeeks,
			duration:   2,
			wantFields: []string{"periodDuration"},
		},
		{
			name:       "unsupported currency is invalid",
			currency:   models.Currency("AUD"),
			period:     models.PeriodMonths,
			duration:   6,
			wantFields: []string{"currency"},
		},
		{
			name:       "unsupported period is invalid",
			currency:   models.CurrencyCHF,
			period:     models.Period("Years"),
			duration:   1,
			wantFields: []string{"period"},
		},
		{
			name:       "violations accumulate across fields",
			currency:   models.Currency("AUD"),
			period:     models.PeriodWeeks,
			duration:   4,
			wantFields: []string{"currency", "periodDuration"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCoherence(CoherenceInput{
				Type:           models.TypeDeposit,
				Currency:       tc.currency,
				Period:         tc.period,
				PeriodDuration: tc.duration,
			})

			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Len(t, vErr.Fields, len(tc.wantFields))
			for _, field := range tc.wantFields {
				assert.NotEmpty(t, vErr.Fields[field], "expected messages on field %s", field)
			}
		})
	}
}

func TestValidateCoherenceErrorMessage(t *testing.T) {
	err := ValidateCoherence(CoherenceInput{
		Type:           models.TypeLoan,
		Currency:       models.CurrencyUSD,
		Period:         models.PeriodWeeks,
		PeriodDuration: 3,
	})

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid Loan format.", vErr.Error())
}

func TestValidateFull(t *testing.T) {
	appetite := true
	pricing := 0.9

	valid := models.SavePosition{
		OwnerStaticID:  "owner-1",
		Type:           models.TypeDeposit,
		Currency:       models.CurrencyUSD,
		Period:         models.PeriodMonths,
		PeriodDuration: 3,
		Appetite:       &appetite,
		Pricing:        &pricing,
	}

	t.Run("valid save passes", func(t *testing.T) {
		assert.NoError(t, ValidateFull(valid))
	})

	t.Run("missing owner is reported", func(t *testing.T) {
		candidate := valid
		candidate.OwnerStaticID = ""

		var vErr *ValidationError
		require.ErrorAs(t, ValidateFull(candidate), &vErr)
		assert.NotEmpty(t, vErr.Fields["ownerStaticId"])
	})

	t.Run("negative pricing is reported", func(t *testing.T) {
		candidate := valid
		bad := -0.1
		candidate.Pricing = &bad

		var vErr *ValidationError
		require.ErrorAs(t, ValidateFull(candidate), &vErr)
		assert.NotEmpty(t, vErr.Fields["pricing"])
	})

	t.Run("structural and coherence violations are merged", func(t *testing.T) {
		candidate := valid
		candidate.OwnerStaticID = ""
		candidate.Currency = models.Currency("AUD")
		candidate.PeriodDuration = 5

		var vErr *ValidationError
		require.ErrorAs(t, ValidateFull(candidate), &vErr)
		assert.NotEmpty(t, vErr.Fields["ownerStaticId"])
		assert.NotEmpty(t, vErr.Fields["currency"])
		assert.NotEmpty(t, vErr.Fields["periodDuration"])
	})

	t.Run("a field can carry multiple messages", func(t *testing.T) {
		candidate := valid
		candidate.Period = models.PeriodMonths
		candidate.PeriodDuration = -3

		var vErr *ValidationError
		require.ErrorAs(t, ValidateFull(candidate), &vErr)
		assert.Len(t, vErr.Fields["periodDuration"], 2)
	})
}

func TestFieldSummaryIsStable(t *testing.T) {
	err := ValidateCoherence(CoherenceInput{
		Type:           models.TypeDeposit,
		Currency:       models.Currency("AUD"),
		Period:         models.PeriodWeeks,
		PeriodDuration: 9,
	})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, vErr.FieldSummary(), vErr.FieldSummary())
	assert.Contains(t, vErr.FieldSummary(), "currency")
	assert.Contains(t, vErr.FieldSummary(), "periodDuration")
}
