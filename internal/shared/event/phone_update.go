package event

const PhoneUpdateDestination string = "phone_update"

type PhoneUpdateMessage struct {
	AccountID   string `json:"account_id"`
	PhoneNumber string `json:"phone_number"`
}
