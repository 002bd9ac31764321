package event

const AccountUpdateDestination string = "account_update"

type AccountUpdateMessage struct {
	AccountID   string `json:"account_id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	PhoneNumber string `json:"phone_number"`
}
