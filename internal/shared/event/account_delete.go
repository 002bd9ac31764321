package event

const AccountDeleteDestination string = "account_delete"

type AccountDeleteMessage struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
}
