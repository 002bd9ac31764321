package event

const PhoneResetDestination string = "phone_reset"

type PhoneResetMessage struct {
	AccountID   string `json:"account_id"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}
