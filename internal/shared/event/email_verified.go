package event

const EmailVerifiedDestination string = "email_verified"

type EmailVerifiedMessage struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
}
