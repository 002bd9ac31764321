package entity

// OTPPurpose scopes a one-time code to a single workflow. A code issued for
// one purpose never validates another.
type OTPPurpose string

const (
	OTPPurposeUnknown                 OTPPurpose = ""
	OTPPurposeEmailVerification       OTPPurpose = "email_verification"
	OTPPurposePhoneVerification       OTPPurpose = "phone_verification"
	OTPPurposeForgotPassword          OTPPurpose = "forgot_password"
	OTPPurposeResetPassword           OTPPurpose = "reset_password"
	OTPPurposeTransactionVerification OTPPurpose = "transaction_verification"
)

func (p OTPPurpose) String() string {
	return string(p)
}

func (p OTPPurpose) IsValid() bool {
	switch p {
	case OTPPurposeEmailVerification,
		OTPPurposePhoneVerification,
		OTPPurposeForgotPassword,
		OTPPurposeResetPassword,
		OTPPurposeTransactionVerification:
		return true
	default:
		return false
	}
}

// ParseOTPPurpose maps a raw string to a known purpose, or OTPPurposeUnknown.
func ParseOTPPurpose(raw string) OTPPurpose {
	p := OTPPurpose(raw)
	if !p.IsValid() {
		return OTPPurposeUnknown
	}

	return p
}

// Role names used by the authorization policies.
const (
	RoleAdmin string = "admin"
	RoleUser  string = "user"
)
