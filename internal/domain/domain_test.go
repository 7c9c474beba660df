package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPixKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want PixKeyKind
	}{
		{name: "cpf", key: "12345678901", want: PixKeyCPF},
		{name: "cnpj", key: "12345678000195", want: PixKeyCNPJ},
		{name: "short email", key: "a@b.co", want: PixKeyEmail},
		{name: "email with plus tag", key: "coach+billing@gym.com.br", want: PixKeyEmail},
		{name: "mobile phone", key: "+5511999999999", want: PixKeyPhone},
		{name: "landline phone", key: "+551133334444", want: PixKeyPhone},
		{name: "uuid random key", key: "123e4567-e89b-12d3-a456-426614174000", want: PixKeyRandom},
		{name: "surrounding whitespace is trimmed", key: "  12345678901  ", want: PixKeyCPF},
		{name: "blank", key: "", want: PixKeyInvalid},
		{name: "whitespace only", key: "   ", want: PixKeyInvalid},
		{name: "12 digits matches nothing", key: "123456789012", want: PixKeyInvalid},
		{name: "15 digits matches nothing", key: "123456789012345", want: PixKeyInvalid},
		{name: "phone with too many digits", key: "+551199999999999", want: PixKeyInvalid},
		{name: "phone without country code", key: "11999999999", want: PixKeyCPF},
		{name: "email without tld", key: "a@b", want: PixKeyInvalid},
		{name: "uuid with bad group length", key: "123e4567-e89b-12d3-a456-42661417400", want: PixKeyInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPixKey(tt.key))
		})
	}
}

func TestValidatePixKey(t *testing.T) {
	assert.True(t, ValidatePixKey("12345678901"))
	assert.True(t, ValidatePixKey("a@b.co"))
	assert.False(t, ValidatePixKey(""))
	assert.False(t, ValidatePixKey("not-a-key"))
}

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Recurrence
		wantErr bool
	}{
		{name: "exact wire form", input: "MONTHLY", want: RecurrenceMonthly},
		{name: "lowercase", input: "weekly", want: RecurrenceWeekly},
		{name: "dash normalized to underscore", input: "semi-annually", want: RecurrenceSemiAnnually},
		{name: "mixed case with whitespace", input: "  Quarterly ", want: RecurrenceQuarterly},
		{name: "annually", input: "ANNUALLY", want: RecurrenceAnnually},
		{name: "unknown cadence", input: "daily", wantErr: true},
		{name: "blank", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecurrence(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRecurrence)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecurrenceValid(t *testing.T) {
	assert.True(t, RecurrenceMonthly.Valid())
	assert.False(t, Recurrence("DAILY").Valid())
	assert.False(t, Recurrence("").Valid())
}

func TestRecurrenceDisplayName(t *testing.T) {
	assert.Equal(t, "Semi-annually", RecurrenceSemiAnnually.DisplayName())
	assert.Equal(t, "Monthly", RecurrenceMonthly.DisplayName())
	assert.Equal(t, "SOMETHING", Recurrence("SOMETHING").DisplayName())
}

func TestBillingOverdue(t *testing.T) {
	overdue := Billing{Status: BillingStatusOverdue, Amount: decimal.NewFromFloat(99.90)}
	paid := Billing{Status: "PAID"}

	assert.True(t, overdue.Overdue())
	assert.False(t, paid.Overdue())
	assert.False(t, Billing{}.Overdue())
}
