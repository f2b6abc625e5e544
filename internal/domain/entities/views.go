package entities

import "github.com/volatiletech/null/v8"

// MerchantStatusResponse reports the registry's active flag for a wallet.
type MerchantStatusResponse struct {
	Address string `json:"address"`
	Active  bool   `json:"active"`
}

// CreateRequestInput represents input for payment-request creation. Amount
// is a USD decimal string as typed; validation happens in the usecase so
// failures surface in a fixed order.
type CreateRequestInput struct {
	Amount   string `json:"amount"`
	Token    string `json:"token"`
	Duration int64  `json:"duration"`
}

// CreateRequestResponse is the outcome of a creation attempt. When
// RegistrationRequired is set no transaction was submitted; the caller must
// onboard first.
type CreateRequestResponse struct {
	TxHash               string `json:"txHash,omitempty"`
	RegistrationRequired bool   `json:"registrationRequired,omitempty"`
}

// PaymentLinkView is one row of the merchant dashboard list.
type PaymentLinkView struct {
	ID        string        `json:"id"`
	PayLink   string        `json:"payLink"`
	Status    PaymentStatus `json:"status"`
	Token     string        `json:"token"`
	AmountUSD string        `json:"amountUsd"`
	ExpiresAt int64         `json:"expiresAt"`
	TimeLeft  int64         `json:"timeLeft"`
	Countdown string        `json:"countdown"`
	Copied    bool          `json:"copied"`
}

// SettlementView is the customer-facing state of one payment link.
type SettlementView struct {
	ID        string        `json:"id"`
	Status    PaymentStatus `json:"status"`
	Merchant  string        `json:"merchant"`
	Customer  null.String   `json:"customer,omitempty"`
	Token     string        `json:"token"`
	Amount    string        `json:"amount"`
	AmountUSD string        `json:"amountUsd"`
	ExpiresAt int64         `json:"expiresAt"`
	TimeLeft  int64         `json:"timeLeft"`
	Countdown string        `json:"countdown"`
}

// SettleResponse is the outcome of a confirmed settlement submission.
type SettleResponse struct {
	TxHash string        `json:"txHash"`
	Status PaymentStatus `json:"status"`
}

// TokenPrice pairs an accepted token with its display-only USD price.
type TokenPrice struct {
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
	Native   bool   `json:"native"`
	PriceUSD string `json:"priceUsd,omitempty"`
}
