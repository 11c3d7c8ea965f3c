package billing

import (
	"strings"
	"time"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/orderdesk/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// IntakeStep is a step in the payment intake workflow
type IntakeStep string

const (
	StepAmount  IntakeStep = "AMOUNT"
	StepMethod  IntakeStep = "METHOD"
	StepConfirm IntakeStep = "CONFIRM"
)

// IntakeSession walks a payment through amount entry, method selection
// and confirmation. Values entered at earlier steps survive Back, so a
// forward pass after stepping back re-presents them for editing.
//
// The session validates against the balance it was opened with; the
// recording service revalidates against fresh balances inside its
// transaction, so a stale session can still be rejected at confirm
// time.
type IntakeSession struct {
	OrderNumber string
	Remaining   valueobject.Money

	step   IntakeStep
	amount valueobject.Money
	method PaymentMethod
	remark string
}

// PaymentDraft is the validated output of a completed intake session
type PaymentDraft struct {
	OrderNumber string
	Amount      valueobject.Money
	Method      PaymentMethod
	Remark      string
	PaidAt      time.Time
}

// NewIntakeSession opens an intake session against an order's current
// remaining balance
func NewIntakeSession(orderNumber string, remaining decimal.Decimal) (*IntakeSession, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return &IntakeSession{
		OrderNumber: orderNumber,
		Remaining:   valueobject.NewMoneyUSD(remaining),
		step:        StepAmount,
	}, nil
}

// Step returns the step the session is currently on
func (s *IntakeSession) Step() IntakeStep {
	return s.step
}

// SuggestedAmount is the prefill for the amount step: the order's
// remaining balance
func (s *IntakeSession) SuggestedAmount() valueobject.Money {
	return s.Remaining
}

// Amount returns the amount entered so far, or the suggestion if none
func (s *IntakeSession) Amount() valueobject.Money {
	if s.amount.IsZero() {
		return s.Remaining
	}
	return s.amount
}

// Method returns the method selected so far
func (s *IntakeSession) Method() PaymentMethod {
	return s.method
}

// EnterAmount validates the raw amount input and advances to the
// method step. The raw string form is accepted so that non-numeric
// input is rejected here rather than at parse sites upstream.
func (s *IntakeSession) EnterAmount(raw string) error {
	if s.step != StepAmount {
		return shared.NewDomainError("INVALID_STATE", "Amount can only be entered at the amount step")
	}

	if strings.TrimSpace(raw) == "" {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be empty")
	}
	amount, err := valueobject.ParseMoney(raw)
	if err != nil {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be a number")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	over, err := amount.GreaterThan(s.Remaining)
	if err != nil {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount currency does not match")
	}
	if over {
		return shared.ErrExceedsBalance
	}

	s.amount = amount
	s.step = StepMethod
	return nil
}

// SelectMethod validates the method selection and advances to confirm
func (s *IntakeSession) SelectMethod(method PaymentMethod, remark string) error {
	if s.step != StepMethod {
		return shared.NewDomainError("INVALID_STATE", "Method can only be selected at the method step")
	}
	if method == "" {
		return shared.NewDomainError("INVALID_METHOD", "Payment method must be selected")
	}
	if !method.IsValid() {
		return shared.NewDomainError("INVALID_METHOD", "Payment method is not valid")
	}

	s.method = method
	s.remark = remark
	s.step = StepConfirm
	return nil
}

// Back steps the session back one step, keeping entered values
func (s *IntakeSession) Back() {
	switch s.step {
	case StepConfirm:
		s.step = StepMethod
	case StepMethod:
		s.step = StepAmount
	}
}

// Draft finalizes the session into a payment draft. Only legal at the
// confirm step, after both earlier steps passed validation.
func (s *IntakeSession) Draft(paidAt time.Time) (*PaymentDraft, error) {
	if s.step != StepConfirm {
		return nil, shared.NewDomainError("INVALID_STATE", "Payment can only be confirmed at the confirm step")
	}

	return &PaymentDraft{
		OrderNumber: s.OrderNumber,
		Amount:      s.amount,
		Method:      s.method,
		Remark:      s.remark,
		PaidAt:      paidAt,
	}, nil
}
