package event

const OTPRequestDestination string = "otp_request"

type OTPRequestMessage struct {
	AccountID   string `json:"account_id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstname"`
	PhoneNumber string `json:"phone_number"`
	Purpose     string `json:"purpose"`
}
