package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// TransactionKind – immutable value object
// ---------------------------------------------------------------------------

// TransactionKind classifies the destination of the disbursed funds. The kind
// decides the fold direction of every fee: funds sent to the borrower's own
// bank account have fees deducted from the disbursement, while transactions
// that must deliver an exact amount to a third party (merchant, biller, QR
// payee) have fees added on top of the gross loan amount.
type TransactionKind struct {
	value string
}

const (
	kindSelfBankAccount  = "SELF_BANK_ACCOUNT"
	kindOtherBankAccount = "OTHER_BANK_ACCOUNT"
	kindPaymentPoint     = "PAYMENT_POINT"
	kindQRIS             = "QRIS"
	kindEcommerce        = "ECOMMERCE"
	kindEducation        = "EDUCATION"
	kindHealthcare       = "HEALTHCARE"
)

var (
	TransactionKindSelfBankAccount  = TransactionKind{value: kindSelfBankAccount}
	TransactionKindOtherBankAccount = TransactionKind{value: kindOtherBankAccount}
	TransactionKindPaymentPoint     = TransactionKind{value: kindPaymentPoint}
	TransactionKindQRIS             = TransactionKind{value: kindQRIS}
	TransactionKindEcommerce        = TransactionKind{value: kindEcommerce}
	TransactionKindEducation        = TransactionKind{value: kindEducation}
	TransactionKindHealthcare       = TransactionKind{value: kindHealthcare}
)

var validTransactionKinds = map[string]TransactionKind{
	kindSelfBankAccount:  TransactionKindSelfBankAccount,
	kindOtherBankAccount: TransactionKindOtherBankAccount,
	kindPaymentPoint:     TransactionKindPaymentPoint,
	kindQRIS:             TransactionKindQRIS,
	kindEcommerce:        TransactionKindEcommerce,
	kindEducation:        TransactionKindEducation,
	kindHealthcare:       TransactionKindHealthcare,
}

// NewTransactionKind creates a TransactionKind from a raw string.
func NewTransactionKind(s string) (TransactionKind, error) {
	v, ok := validTransactionKinds[s]
	if !ok {
		return TransactionKind{}, fmt.Errorf("invalid transaction kind: %q", s)
	}
	return v, nil
}

// String returns the string representation of the kind.
func (k TransactionKind) String() string { return k.value }

// IsZero returns true if the kind has not been initialised.
func (k TransactionKind) IsZero() bool { return k.value == "" }

// Equal returns true when both kinds carry the same value.
func (k TransactionKind) Equal(other TransactionKind) bool { return k.value == other.value }

// DeductsFees reports whether fees are deducted from the disbursement
// (true only for the borrower's own bank account). All remaining kinds
// add fees on top of the gross loan amount so the payee receives the
// exact requested amount.
func (k TransactionKind) DeductsFees() bool {
	return k.value == kindSelfBankAccount
}

// UsesFirstInstallmentDisplay reports whether a single-month offer displays
// the first-period installment as its monthly installment. Billers settle
// against the stub period, so the two figures must agree on screen.
func (k TransactionKind) UsesFirstInstallmentDisplay() bool {
	switch k.value {
	case kindPaymentPoint, kindQRIS, kindEcommerce:
		return true
	}
	return false
}
