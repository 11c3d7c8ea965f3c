package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaidAmount(t *testing.T) {
	payments := []Payment{
		testPayment(t, "PM001", "OD001", "20.00", MethodCash, "2026-01-11"),
		testPayment(t, "PM002", "OD001", "10.00", MethodCheque, "2026-01-12"),
		testPayment(t, "PM003", "OD002", "99.00", MethodCash, "2026-01-12"),
	}

	assert.True(t, PaidAmount("OD001", payments).Equal(dec("30")))
	assert.True(t, PaidAmount("OD002", payments).Equal(dec("99")))
	assert.True(t, PaidAmount("OD003", payments).Equal(dec("0")))
	assert.True(t, PaidAmount("OD001", nil).Equal(dec("0")))
}

func TestRemainingBalance(t *testing.T) {
	snap := testSnapshot(t)
	order := testOrder(t, "OD001", "Acme Corp", "2026-01-10", PaymentStatusPending,
		line("MF-001", "2", "25.00", "10.00"))

	tests := []struct {
		name     string
		payments []Payment
		want     string
	}{
		{
			name:     "no payments",
			payments: nil,
			want:     "50",
		},
		{
			name: "partial payment",
			payments: []Payment{
				testPayment(t, "PM001", "OD001", "20.00", MethodCash, "2026-01-11"),
			},
			want: "30",
		},
		{
			name: "full payment",
			payments: []Payment{
				testPayment(t, "PM001", "OD001", "50.00", MethodCash, "2026-01-11"),
			},
			want: "0",
		},
		{
			name: "other order payments ignored",
			payments: []Payment{
				testPayment(t, "PM001", "OD002", "50.00", MethodCash, "2026-01-11"),
			},
			want: "50",
		},
		{
			name: "overpaid state clamps to zero",
			payments: []Payment{
				testPayment(t, "PM001", "OD001", "70.00", MethodCash, "2026-01-11"),
			},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemainingBalance(&order, snap, tt.payments, PriceFromSnapshot)
			assert.True(t, got.Equal(dec(tt.want)), "remaining = %s, want %s", got, tt.want)
		})
	}
}

func TestSettled(t *testing.T) {
	assert.True(t, Settled(dec("0")))
	assert.True(t, Settled(dec("0.004")))
	assert.True(t, Settled(dec("0.005")))
	assert.False(t, Settled(dec("0.006")))
	assert.False(t, Settled(dec("1")))
}
