package blockchain

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	dialEVMClient    = ethclient.Dial
	getClientChainID = func(client *ethclient.Client, ctx context.Context) (*big.Int, error) {
		return client.ChainID(ctx)
	}
)

// EVMClient provides EVM blockchain interaction
type EVMClient struct {
	client  *ethclient.Client
	chainID *big.Int
	rpcURL  string
	// test hooks allow deterministic unit tests without network sockets.
	testCallView func(ctx context.Context, to string, data []byte) ([]byte, error)
	testTransact func(ctx context.Context, to, method string, value *big.Int, args []interface{}) (string, error)
	testReceipt  func(ctx context.Context, txHash string) (*types.Receipt, error)
}

// NewEVMClient creates a new EVM client
func NewEVMClient(rpcURL string) (*EVMClient, error) {
	client, err := dialEVMClient(rpcURL)
	if err != nil {
		return nil, err
	}

	chainID, err := getClientChainID(client, context.Background())
	if err != nil {
		return nil, err
	}

	return &EVMClient{
		client:  client,
		chainID: chainID,
		rpcURL:  rpcURL,
	}, nil
}

// TestHooks carries injected implementations for unit tests where RPC
// sockets are unavailable.
type TestHooks struct {
	CallView func(ctx context.Context, to string, data []byte) ([]byte, error)
	Transact func(ctx context.Context, to, method string, value *big.Int, args []interface{}) (string, error)
	Receipt  func(ctx context.Context, txHash string) (*types.Receipt, error)
}

// NewEVMClientWithHooks creates an EVM client backed by injected
// implementations instead of a dialed connection.
func NewEVMClientWithHooks(chainID *big.Int, hooks TestHooks) *EVMClient {
	if chainID == nil {
		chainID = big.NewInt(1)
	}
	return &EVMClient{
		chainID:      chainID,
		testCallView: hooks.CallView,
		testTransact: hooks.Transact,
		testReceipt:  hooks.Receipt,
	}
}

// ChainID returns the chain ID
func (c *EVMClient) ChainID() *big.Int {
	return c.chainID
}

// CallView executes a read-only contract call
func (c *EVMClient) CallView(ctx context.Context, to string, data []byte) ([]byte, error) {
	if c.testCallView != nil {
		return c.testCallView(ctx, to, data)
	}
	addr := common.HexToAddress(to)
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	return c.client.CallContract(ctx, msg, nil)
}

// Transact signs and submits a state-changing contract call and returns the
// transaction hash. A non-nil value makes the call payable.
func (c *EVMClient) Transact(
	ctx context.Context,
	privateKeyHex, contractAddress string,
	parsedABI abi.ABI,
	method string,
	value *big.Int,
	args ...interface{},
) (string, error) {
	if c.testTransact != nil {
		return c.testTransact(ctx, contractAddress, method, value, args)
	}
	if strings.TrimSpace(privateKeyHex) == "" {
		return "", errors.New("operator private key is not configured")
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return "", errors.New("invalid operator private key")
	}

	auth, err := bind.NewKeyedTransactorWithChainID(privateKey, c.chainID)
	if err != nil {
		return "", err
	}
	auth.Context = ctx
	if value != nil {
		auth.Value = value
	}

	contract := bind.NewBoundContract(common.HexToAddress(contractAddress), parsedABI, c.client, c.client, c.client)
	tx, err := contract.Transact(auth, method, args...)
	if err != nil {
		return "", err
	}
	return tx.Hash().Hex(), nil
}

// WaitForReceipt polls for the receipt of a submitted transaction until the
// context is cancelled. In-flight transactions cannot be cancelled; only the
// wait can.
func (c *EVMClient) WaitForReceipt(ctx context.Context, txHash string, poll time.Duration) (*types.Receipt, error) {
	if c.testReceipt != nil {
		return c.testReceipt(ctx, txHash)
	}

	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	hash := common.HexToHash(txHash)
	for {
		receipt, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Close closes the client connection
func (c *EVMClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
