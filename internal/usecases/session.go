package usecases

import "strings"

// Session is the wallet identity bound to one request. It is injected per
// request, never held in package state, so concurrent requests with
// different wallets cannot observe each other.
type Session struct {
	Address string
}

// Connected reports whether a wallet is bound to the session.
func (s Session) Connected() bool {
	return strings.TrimSpace(s.Address) != ""
}
