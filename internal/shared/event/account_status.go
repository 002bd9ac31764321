package event

const AccountStatusDestination string = "account_status"

type AccountStatusMessage struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	Disabled  bool   `json:"disabled"`
}
