package inbound

type AccountCreateRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	PhoneNumber string `json:"phone_number"`
}

type AccountCreateResponse struct {
	AccountID string `json:"account_id"`
}

func (AccountCreateResponse) Message() string {
	return "Account created. Please check your email to verify your account."
}

type AccountUpdateRequest struct {
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	PhoneNumber string `json:"phone_number"`
}

type AccountUpdateResponse struct{}

func (AccountUpdateResponse) Message() string {
	return "Account update requested."
}

type AccountDeleteResponse struct{}

func (AccountDeleteResponse) Message() string {
	return "Account deletion requested."
}

type AccountStatusResponse struct{}

func (AccountStatusResponse) Message() string {
	return "Account status change requested."
}

type PasswordForgotRequest struct {
	Email string `json:"email"`
}

type PasswordForgotResponse struct{}

func (PasswordForgotResponse) Message() string {
	return "If an account with that email exists, we have sent a verification code."
}

type PasswordResetRequest struct {
	CurrentPassword string `json:"current_password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "We have sent a verification code to reset your password."
}

type PasswordUpdateRequest struct {
	NewPassword string `json:"new_password"`
}

type PasswordUpdateResponse struct{}

func (PasswordUpdateResponse) Message() string {
	return "Password update requested."
}

type EmailVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type EmailVerifyResponse struct{}

func (EmailVerifyResponse) Message() string {
	return "Email verified."
}

type PhoneVerifyRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTP         string `json:"otp"`
}

type PhoneVerifyResponse struct{}

func (PhoneVerifyResponse) Message() string {
	return "Phone number verified."
}

type PhoneResetRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type PhoneResetResponse struct{}

func (PhoneResetResponse) Message() string {
	return "We have sent a verification code to the new phone number."
}

type PhoneUpdateRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTP         string `json:"otp"`
}

type PhoneUpdateResponse struct{}

func (PhoneUpdateResponse) Message() string {
	return "Phone number update requested."
}
