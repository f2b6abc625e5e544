package contracts

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"walletwave.backend/internal/domain/entities"
	"walletwave.backend/internal/infrastructure/blockchain"
)

// receiptPollInterval is how often a submitted write is checked for its
// confirmation receipt.
const receiptPollInterval = 2 * time.Second

// Gateway binds the deployed PaymentGateway contract.
type Gateway struct {
	client      *blockchain.EVMClient
	address     string
	operatorKey string
}

// NewGateway creates a gateway binding. Writes are signed with the operator
// key; reads need none.
func NewGateway(client *blockchain.EVMClient, address, operatorKey string) *Gateway {
	return &Gateway{
		client:      client,
		address:     address,
		operatorKey: operatorKey,
	}
}

// GetPayment reads a payment record by identifier. A zero record (zero
// merchant address) means the identifier resolved to nothing; that is the
// caller's not-found signal, not an error.
func (g *Gateway) GetPayment(ctx context.Context, paymentID string) (*entities.PaymentRecord, error) {
	data, err := PaymentGatewayABI.Pack("getPayment", common.HexToHash(paymentID))
	if err != nil {
		return nil, err
	}
	out, err := g.client.CallView(ctx, g.address, data)
	if err != nil {
		return nil, err
	}

	var raw struct {
		PaymentId [32]byte
		Merchant  common.Address
		Customer  common.Address
		Token     common.Address
		Amount    *big.Int
		AmountUSD *big.Int
		Status    uint8
		ExpiresAt *big.Int
	}
	if err := PaymentGatewayABI.UnpackIntoInterface(&raw, "getPayment", out); err != nil {
		return nil, err
	}

	record := &entities.PaymentRecord{
		ID:        common.Hash(raw.PaymentId).Hex(),
		Merchant:  raw.Merchant.Hex(),
		Token:     raw.Token.Hex(),
		Amount:    raw.Amount.String(),
		AmountUSD: raw.AmountUSD.String(),
		Status:    entities.StatusFromChain(raw.Status),
		ExpiresAt: raw.ExpiresAt.Int64(),
	}
	if raw.Customer != (common.Address{}) {
		record.Customer.SetValid(raw.Customer.Hex())
	}
	return record, nil
}

// IsPaymentValid asks the gateway whether the payment can still be settled.
func (g *Gateway) IsPaymentValid(ctx context.Context, paymentID string) (bool, error) {
	return callTypedView[bool](ctx, g.client, g.address, PaymentGatewayABI, "isPaymentValid", common.HexToHash(paymentID))
}

// GetMerchantPayments lists the payment identifiers created by a merchant.
func (g *Gateway) GetMerchantPayments(ctx context.Context, merchant string) ([]string, error) {
	ids, err := callTypedView[[][32]byte](ctx, g.client, g.address, PaymentGatewayABI, "getMerchantPayments", common.HexToAddress(merchant))
	if err != nil {
		return nil, err
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = common.Hash(id).Hex()
	}
	return out, nil
}

// CreatePayment submits a payment-request creation and returns the tx hash.
// amountUSD carries 8 implied decimals; duration is the link validity in
// seconds.
func (g *Gateway) CreatePayment(ctx context.Context, token string, amountUSD *big.Int, duration int64) (string, error) {
	return g.client.Transact(ctx, g.operatorKey, g.address, PaymentGatewayABI, "createPayment",
		nil, common.HexToAddress(token), amountUSD, big.NewInt(duration))
}

// ProcessPayment settles a native-asset payment. The tx value must be the
// exact on-chain settlement amount; no rounding happens here.
func (g *Gateway) ProcessPayment(ctx context.Context, paymentID string, value *big.Int) (string, error) {
	return g.client.Transact(ctx, g.operatorKey, g.address, PaymentGatewayABI, "processPayment",
		value, common.HexToHash(paymentID))
}

// ProcessTokenPayment settles a token payment for the exact on-chain amount.
func (g *Gateway) ProcessTokenPayment(ctx context.Context, paymentID string, amount *big.Int) (string, error) {
	return g.client.Transact(ctx, g.operatorKey, g.address, PaymentGatewayABI, "processTokenPayment",
		nil, common.HexToHash(paymentID), amount)
}

// WaitConfirmed blocks until the transaction has a successful receipt or
// the context ends. A reverted transaction is an error.
func (g *Gateway) WaitConfirmed(ctx context.Context, txHash string) error {
	return waitConfirmed(ctx, g.client, txHash)
}
