package errors

import "errors"

// Kind classifies a business-rule failure so transport layers can map it
// to a response without inspecting reasons.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindState
)

// Error carries a failure kind together with a human-readable reason.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string { return e.Reason }

// Validation builds a KindValidation error.
func Validation(reason string) *Error { return &Error{Kind: KindValidation, Reason: reason} }

// NotFound builds a KindNotFound error.
func NotFound(reason string) *Error { return &Error{Kind: KindNotFound, Reason: reason} }

// Conflict builds a KindConflict error.
func Conflict(reason string) *Error { return &Error{Kind: KindConflict, Reason: reason} }

// State builds a KindState error for illegal lifecycle transitions.
func State(reason string) *Error { return &Error{Kind: KindState, Reason: reason} }

// KindOf extracts the kind from err, or zero when err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsState(err error) bool      { return KindOf(err) == KindState }

var (
	ErrUserNotFound    = NotFound("user not found")
	ErrProductNotFound = NotFound("product not found")
	ErrOrderNotFound   = NotFound("order not found")
	ErrVoucherNotFound = NotFound("voucher not found")
	ErrPackageNotFound = NotFound("package not found")
	ErrPaymentNotFound = NotFound("payment not found")
	ErrPhotoNotFound   = NotFound("photo not found")

	ErrAlreadyExists      = Conflict("already exists")
	ErrInvalidCredentials = Validation("invalid credentials")

	ErrTensionOutOfRange = Validation("tension out of range")
	ErrInvalidAmount     = Validation("invalid amount")

	ErrInsufficientStock = Conflict("insufficient stock")

	ErrVoucherNotValid       = Validation("voucher not valid")
	ErrVoucherFirstOrderOnly = Validation("voucher is for first order only")
	ErrVoucherMinPurchase    = Validation("order amount below voucher minimum")
	ErrVoucherUsed           = Conflict("voucher already used")
	ErrVoucherExhausted      = Conflict("voucher usage cap reached")

	ErrPackageDepleted = Conflict("package depleted")
	ErrPackageExpired  = Conflict("package expired")

	ErrPaymentAlreadyConfirmed = Conflict("payment already confirmed")

	ErrIllegalTransition = State("illegal order status transition")
)
