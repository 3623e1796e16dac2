package domain

const (
	PaymentMethodCard   = "credit_card"
	PaymentMethodWallet = "paypal"
)

// PaymentDetails carries method-specific fields of a payment attempt.
// Card fields apply to PaymentMethodCard, WalletEmail to
// PaymentMethodWallet.
type PaymentDetails struct {
	CardNumber   string
	CardExpMonth int
	CardExpYear  int
	CardCVC      string
	WalletEmail  string
}

// PaymentResult is the gateway's answer to an authorize or refund
// call. A decline is a regular business outcome, not an error: the
// adapter never fails with a Go error for it.
type PaymentResult struct {
	PaymentID     string
	RefundID      string
	Succeeded     bool
	FailureReason string
}
