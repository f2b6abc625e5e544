package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"walletwave.backend/internal/infrastructure/blockchain"
)

// Registry binds the deployed MerchantRegistry contract.
type Registry struct {
	client      *blockchain.EVMClient
	address     string
	operatorKey string
}

// NewRegistry creates a merchant registry binding.
func NewRegistry(client *blockchain.EVMClient, address, operatorKey string) *Registry {
	return &Registry{
		client:      client,
		address:     address,
		operatorKey: operatorKey,
	}
}

// IsMerchantActive reads the active flag for a wallet address.
func (r *Registry) IsMerchantActive(ctx context.Context, merchant string) (bool, error) {
	return callTypedView[bool](ctx, r.client, r.address, MerchantRegistryABI, "isMerchantActive", common.HexToAddress(merchant))
}

// RegisterMerchant submits an onboarding write and returns the tx hash.
func (r *Registry) RegisterMerchant(ctx context.Context, name, email string) (string, error) {
	return r.client.Transact(ctx, r.operatorKey, r.address, MerchantRegistryABI, "registerMerchant",
		nil, name, email)
}

// WaitConfirmed blocks until the transaction has a successful receipt or
// the context ends. A reverted transaction is an error.
func (r *Registry) WaitConfirmed(ctx context.Context, txHash string) error {
	return waitConfirmed(ctx, r.client, txHash)
}
