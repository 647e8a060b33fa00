package model

import "context"

// OTPDeliverer hands a plaintext OTP code to the account owner out of band.
// Delivery is best-effort from the caller's perspective.
type OTPDeliverer interface {
	DeliverOTP(ctx context.Context, email, code string) error
}
