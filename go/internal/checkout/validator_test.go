package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidatePaymentDetails(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	valid := PaymentDetails{
		CardNumber:     "4111111111111111",
		Expiry:         "12/27",
		CVV:            "123",
		CardholderName: "Jane Doe",
	}

	tests := []struct {
		name       string
		mutate     func(d *PaymentDetails)
		wantFields []string
	}{
		{name: "all fields valid", mutate: func(d *PaymentDetails) {}},
		{
			name:   "card number with spaces",
			mutate: func(d *PaymentDetails) { d.CardNumber = "4111 1111 1111 1111" },
		},
		{
			name:   "card expiring this month",
			mutate: func(d *PaymentDetails) { d.Expiry = "08/26" },
		},
		{
			name:       "card expired last month",
			mutate:     func(d *PaymentDetails) { d.Expiry = "07/26" },
			wantFields: []string{FieldExpiry},
		},
		{
			name:       "card expired last year",
			mutate:     func(d *PaymentDetails) { d.Expiry = "12/25" },
			wantFields: []string{FieldExpiry},
		},
		{
			name:       "malformed expiry",
			mutate:     func(d *PaymentDetails) { d.Expiry = "8/26" },
			wantFields: []string{FieldExpiry},
		},
		{
			name:       "short card number",
			mutate:     func(d *PaymentDetails) { d.CardNumber = "4111" },
			wantFields: []string{FieldCardNumber},
		},
		{
			name:       "non-numeric card number",
			mutate:     func(d *PaymentDetails) { d.CardNumber = "4111abcd11111111" },
			wantFields: []string{FieldCardNumber},
		},
		{
			name:       "two digit cvv",
			mutate:     func(d *PaymentDetails) { d.CVV = "12" },
			wantFields: []string{FieldCVV},
		},
		{
			name:       "blank cardholder name",
			mutate:     func(d *PaymentDetails) { d.CardholderName = "   " },
			wantFields: []string{FieldCardholderName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := valid
			tt.mutate(&details)

			result := ValidatePaymentDetails(details, now)
			if len(tt.wantFields) == 0 {
				require.True(t, result.IsValid)
				require.Empty(t, result.Errors)
				return
			}
			require.False(t, result.IsValid)
			require.Len(t, result.Errors, len(tt.wantFields))
			for _, field := range tt.wantFields {
				require.Contains(t, result.Errors, field)
			}
		})
	}
}

func TestValidatePaymentDetailsReportsEveryViolation(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	result := ValidatePaymentDetails(PaymentDetails{}, now)
	require.False(t, result.IsValid)
	require.Len(t, result.Errors, 4)
	require.Contains(t, result.Errors, FieldCardNumber)
	require.Contains(t, result.Errors, FieldExpiry)
	require.Contains(t, result.Errors, FieldCVV)
	require.Contains(t, result.Errors, FieldCardholderName)
}
