package entities

// MerchantProfile is the local mirror of a registered merchant. Name and
// email are captured at registration time only; the registry is never
// re-read for them, only for the active flag.
type MerchantProfile struct {
	Address       string `json:"address"`
	BusinessName  string `json:"businessName,omitempty"`
	BusinessEmail string `json:"businessEmail,omitempty"`
	Active        bool   `json:"active"`
}

// RegisterMerchantInput represents input for merchant onboarding
type RegisterMerchantInput struct {
	BusinessName string `json:"businessName" binding:"required"`
	Email        string `json:"email" binding:"required"`
}
