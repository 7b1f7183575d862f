package domain

import "errors"

var (
	ErrNoActiveSession   = errors.New("no active booking session")
	ErrRecordNotFound    = errors.New("record not found")
	ErrInvalidPromoCode  = errors.New("invalid promo code")
	ErrEmptySelection    = errors.New("no seats selected")
	ErrAmountMismatch    = errors.New("payment amount does not match the computed total")
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrOTPNotRequested   = errors.New("request an OTP first")
	ErrOTPExpired        = errors.New("OTP expired")
	ErrOTPMismatch       = errors.New("invalid OTP")
	ErrDuplicatePayment  = errors.New("payment already recorded")
	ErrPaymentDeclined   = errors.New("payment declined")
)
