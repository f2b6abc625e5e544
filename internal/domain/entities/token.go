package entities

import "strings"

// Token describes an accepted settlement token.
type Token struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
	Native  bool   `json:"native"`
}

// TokenRegistry resolves between token symbols and addresses. The native
// entry is a sentinel address, not a deployed contract.
type TokenRegistry struct {
	tokens []Token
}

// NewTokenRegistry builds the registry. The first address is the
// native-asset sentinel (ETH).
func NewTokenRegistry(ethSentinel, btcAddress, usdcAddress string) *TokenRegistry {
	return &TokenRegistry{tokens: []Token{
		{Symbol: "ETH", Address: ethSentinel, Native: true},
		{Symbol: "BTC", Address: btcAddress},
		{Symbol: "USDC", Address: usdcAddress},
	}}
}

// All returns the accepted tokens in display order.
func (r *TokenRegistry) All() []Token {
	out := make([]Token, len(r.tokens))
	copy(out, r.tokens)
	return out
}

// SymbolFor returns the display symbol for a token address, or "Unknown".
func (r *TokenRegistry) SymbolFor(address string) string {
	for _, t := range r.tokens {
		if strings.EqualFold(t.Address, address) {
			return t.Symbol
		}
	}
	return "Unknown"
}

// Find resolves a symbol or address to its registry entry.
func (r *TokenRegistry) Find(symbolOrAddress string) (Token, bool) {
	for _, t := range r.tokens {
		if strings.EqualFold(t.Symbol, symbolOrAddress) || strings.EqualFold(t.Address, symbolOrAddress) {
			return t, true
		}
	}
	return Token{}, false
}

// AddressFor resolves a symbol or address to the on-chain identifier.
func (r *TokenRegistry) AddressFor(symbolOrAddress string) (string, bool) {
	t, ok := r.Find(symbolOrAddress)
	return t.Address, ok
}

// IsNative reports whether the address is the native-asset sentinel.
func (r *TokenRegistry) IsNative(address string) bool {
	for _, t := range r.tokens {
		if t.Native && strings.EqualFold(t.Address, address) {
			return true
		}
	}
	return false
}

// ValidityOptions are the accepted link validity durations in seconds.
var ValidityOptions = []int64{300, 1800, 3600, 86400}

// IsValidDuration reports whether the duration is one of the enumerated
// validity options.
func IsValidDuration(seconds int64) bool {
	for _, opt := range ValidityOptions {
		if seconds == opt {
			return true
		}
	}
	return false
}
