package metadomain

type AdAccount struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Name       string `json:"name"`
	Currency   string `json:"currency"`
	TimezoneID int    `json:"timezone_id"`
}
