package middleware

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"walletwave.backend/internal/usecases"
)

// WalletHeader carries the connected wallet address for the request.
const WalletHeader = "X-Wallet-Address"

const sessionKey = "wallet_session"

// SessionMiddleware binds the wallet identity from the request header to the
// request. A missing or malformed address yields a disconnected session;
// the usecases decide which operations require one.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := usecases.Session{}
		if addr := c.GetHeader(WalletHeader); common.IsHexAddress(addr) {
			session.Address = common.HexToAddress(addr).Hex()
		}
		c.Set(sessionKey, session)
		c.Next()
	}
}

// GetSession returns the wallet session bound to the request.
func GetSession(c *gin.Context) usecases.Session {
	if v, ok := c.Get(sessionKey); ok {
		if session, ok := v.(usecases.Session); ok {
			return session
		}
	}
	return usecases.Session{}
}
