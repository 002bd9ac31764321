package event

const PasswordUpdateDestination string = "password_update"

type PasswordUpdateMessage struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	// PasswordHash is the bcrypt digest, never the plaintext.
	PasswordHash string `json:"password_hash"`
}
