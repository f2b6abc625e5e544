package main

import (
	"errors"
	"math/big"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletwave.backend/internal/infrastructure/blockchain"
)

func withMainHooks(t *testing.T) {
	t.Helper()
	origDotenv := loadDotenv
	origRedis := initRedis
	origEVM := newEVMClient
	origRun := runServer
	t.Cleanup(func() {
		loadDotenv = origDotenv
		initRedis = origRedis
		newEVMClient = origEVM
		runServer = origRun
	})

	// Keep the refresh job idle for the lifetime of the test binary.
	t.Setenv("MIRROR_REFRESH_INTERVAL", "1h")

	loadDotenv = func(...string) error { return errors.New("no dotenv in tests") }
	initRedis = func(string, string) error { return nil }
	newEVMClient = func(string) (*blockchain.EVMClient, error) {
		return blockchain.NewEVMClientWithHooks(big.NewInt(11155111), blockchain.TestHooks{}), nil
	}
	runServer = func(*gin.Engine, string) error { return nil }
}

func TestRunMainProcess_RedisInitError(t *testing.T) {
	withMainHooks(t)
	initRedis = func(string, string) error { return errors.New("connection refused") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestRunMainProcess_RPCDialError(t *testing.T) {
	withMainHooks(t)
	newEVMClient = func(string) (*blockchain.EVMClient, error) {
		return nil, errors.New("dial tcp: refused")
	}

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc")
}

func TestRunMainProcess_ServerRunError(t *testing.T) {
	withMainHooks(t)
	runServer = func(*gin.Engine, string) error { return errors.New("port taken") }

	err := runMainProcess()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
}

func TestRunMainProcess_SuccessPath(t *testing.T) {
	withMainHooks(t)
	require.NoError(t, runMainProcess())
}
