package blockchain

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"cryptopay-gateway/internal/core/domain"
)

// LocalWallets generates placeholder deposit addresses in-process. The
// address only has to be unique and shaped like the rail's addresses; it is
// never used to sign anything.
type LocalWallets struct{}

func NewLocalWallets() *LocalWallets {
	return &LocalWallets{}
}

// GenerateWallet returns a TRON-style address ("T" + 33 hex) for TRC20 and an
// Ethereum-style address ("0x" + 40 hex) for ERC20, with a 32-byte hex secret.
func (LocalWallets) GenerateWallet(ctx context.Context, currency domain.Currency) (*domain.DepositWallet, error) {
	network, ok := currency.Network()
	if !ok {
		return nil, fmt.Errorf("unsupported currency %q", currency)
	}

	var address string
	if network == domain.NetworkTron {
		h, err := randomHex(17)
		if err != nil {
			return nil, err
		}
		address = "T" + h[:33]
	} else {
		h, err := randomHex(20)
		if err != nil {
			return nil, err
		}
		address = "0x" + h
	}

	secret, err := randomHex(32)
	if err != nil {
		return nil, err
	}
	return &domain.DepositWallet{Address: address, Secret: secret}, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
