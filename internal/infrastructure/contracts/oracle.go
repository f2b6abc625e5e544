package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"walletwave.backend/internal/infrastructure/blockchain"
)

// Oracle binds the deployed PriceOracle contract. Prices are display-only.
type Oracle struct {
	client  *blockchain.EVMClient
	address string
}

// NewOracle creates a price oracle binding.
func NewOracle(client *blockchain.EVMClient, address string) *Oracle {
	return &Oracle{client: client, address: address}
}

// GetPrice reads the USD price of a token with 8 implied decimals.
func (o *Oracle) GetPrice(ctx context.Context, token string) (*big.Int, error) {
	return callTypedView[*big.Int](ctx, o.client, o.address, PriceOracleABI, "getPrice", common.HexToAddress(token))
}
