package event

const AccountCreateDestination string = "account_create"

type AccountCreateMessage struct {
	AccountID   string `json:"account_id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	PhoneNumber string `json:"phone_number"`
	// PasswordHash is the bcrypt digest, never the plaintext.
	PasswordHash string `json:"password_hash"`
}
