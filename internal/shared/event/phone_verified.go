package event

const PhoneVerifiedDestination string = "phone_verified"

type PhoneVerifiedMessage struct {
	AccountID   string `json:"account_id"`
	PhoneNumber string `json:"phone_number"`
}
