package contracts

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"

	"walletwave.backend/internal/infrastructure/blockchain"
)

var (
	// PaymentGatewayABI covers the gateway surface the application consumes.
	PaymentGatewayABI = mustParseABI(`[
		{"inputs":[{"internalType":"bytes32","name":"paymentId","type":"bytes32"}],"name":"getPayment","outputs":[{"internalType":"bytes32","name":"paymentId","type":"bytes32"},{"internalType":"address","name":"merchant","type":"address"},{"internalType":"address","name":"customer","type":"address"},{"internalType":"address","name":"token","type":"address"},{"internalType":"uint256","name":"amount","type":"uint256"},{"internalType":"uint256","name":"amountUSD","type":"uint256"},{"internalType":"uint8","name":"status","type":"uint8"},{"internalType":"uint256","name":"expiresAt","type":"uint256"}],"stateMutability":"view","type":"function"},
		{"inputs":[{"internalType":"bytes32","name":"paymentId","type":"bytes32"}],"name":"isPaymentValid","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
		{"inputs":[{"internalType":"address","name":"merchant","type":"address"}],"name":"getMerchantPayments","outputs":[{"internalType":"bytes32[]","name":"","type":"bytes32[]"}],"stateMutability":"view","type":"function"},
		{"inputs":[{"internalType":"address","name":"token","type":"address"},{"internalType":"uint256","name":"amountUSD","type":"uint256"},{"internalType":"uint256","name":"duration","type":"uint256"}],"name":"createPayment","outputs":[{"internalType":"bytes32","name":"paymentId","type":"bytes32"}],"stateMutability":"nonpayable","type":"function"},
		{"inputs":[{"internalType":"bytes32","name":"paymentId","type":"bytes32"}],"name":"processPayment","outputs":[],"stateMutability":"payable","type":"function"},
		{"inputs":[{"internalType":"bytes32","name":"paymentId","type":"bytes32"},{"internalType":"uint256","name":"amount","type":"uint256"}],"name":"processTokenPayment","outputs":[],"stateMutability":"nonpayable","type":"function"}
	]`)
	// MerchantRegistryABI covers onboarding and the active-flag read.
	MerchantRegistryABI = mustParseABI(`[
		{"inputs":[{"internalType":"address","name":"merchant","type":"address"}],"name":"isMerchantActive","outputs":[{"internalType":"bool","name":"","type":"bool"}],"stateMutability":"view","type":"function"},
		{"inputs":[{"internalType":"string","name":"name","type":"string"},{"internalType":"string","name":"email","type":"string"}],"name":"registerMerchant","outputs":[],"stateMutability":"nonpayable","type":"function"}
	]`)
	// PriceOracleABI exposes the 8-implied-decimal USD price per token.
	PriceOracleABI = mustParseABI(`[
		{"inputs":[{"internalType":"address","name":"token","type":"address"}],"name":"getPrice","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
	]`)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return parsed
}

// waitConfirmed blocks until the transaction has a receipt. A mined
// transaction whose receipt carries the failed status reverted on-chain,
// so it is an error, not a confirmation.
func waitConfirmed(ctx context.Context, client *blockchain.EVMClient, txHash string) error {
	receipt, err := client.WaitForReceipt(ctx, txHash, receiptPollInterval)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", txHash)
	}
	return nil
}

func callTypedView[T any](
	ctx context.Context,
	client *blockchain.EVMClient,
	contractAddress string,
	parsedABI abi.ABI,
	method string,
	args ...interface{},
) (T, error) {
	var zero T

	data, err := parsedABI.Pack(method, args...)
	if err != nil {
		return zero, err
	}
	out, err := client.CallView(ctx, contractAddress, data)
	if err != nil {
		return zero, err
	}
	vals, err := parsedABI.Unpack(method, out)
	if err != nil || len(vals) == 0 {
		return zero, fmt.Errorf("failed to decode %s", method)
	}
	value, ok := vals[0].(T)
	if !ok {
		return zero, fmt.Errorf("invalid %s return type", method)
	}
	return value, nil
}
