// Package payment contains the payment strategies and the settlement
// service that reports payment outcomes against pending bookings.  A
// strategy is an opaque collaborator returning an outcome code; any
// outcome other than success uniformly triggers a release of the
// booking's seats.
package payment

import (
	"fmt"
	"log"
)

// Status is the closed set of payment outcome codes.
type Status string

// Payment outcomes.  Every non-success status is treated the same way
// by the settlement service.
const (
	StatusSuccess                  Status = "SUCCESS"
	StatusFailureBankError         Status = "FAILURE_BANK_ERROR"
	StatusFailureInsufficientFunds Status = "FAILURE_INSUFFICIENT_FUNDS"
)

// Method identifies a payment method supported by the system.
type Method string

// Supported payment methods.
const (
	MethodDebitCard  Method = "DEBIT_CARD"
	MethodCreditCard Method = "CREDIT_CARD"
	MethodUPI        Method = "UPI"
)

// Strategy processes a payment and reports its outcome.  Real
// implementations would call out to a gateway; the concrete
// strategies here simulate fixed outcomes.
type Strategy interface {
	ProcessPayment() Status
}

// DebitCardStrategy simulates a debit card payment that succeeds.
type DebitCardStrategy struct{}

// ProcessPayment implements Strategy.
func (DebitCardStrategy) ProcessPayment() Status {
	log.Printf("processing debit card payment: success")
	return StatusSuccess
}

// CreditCardStrategy simulates a credit card payment that succeeds.
type CreditCardStrategy struct{}

// ProcessPayment implements Strategy.
func (CreditCardStrategy) ProcessPayment() Status {
	log.Printf("processing credit card payment: success")
	return StatusSuccess
}

// UpiStrategy simulates a UPI payment that fails with a bank error.
type UpiStrategy struct{}

// ProcessPayment implements Strategy.
func (UpiStrategy) ProcessPayment() Status {
	log.Printf("processing UPI payment: bank error")
	return StatusFailureBankError
}

// StrategyForMethod returns the strategy registered for a payment
// method.  Unknown methods are an error so handlers can reject them
// before touching any booking state.
func StrategyForMethod(m Method) (Strategy, error) {
	switch m {
	case MethodDebitCard:
		return DebitCardStrategy{}, nil
	case MethodCreditCard:
		return CreditCardStrategy{}, nil
	case MethodUPI:
		return UpiStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown payment method: %q", m)
	}
}
