package domain

import "time"

// Currency is the rail tag of a deposit.
type Currency string

const (
	CurrencyUSDTTRC20 Currency = "USDT-TRC20"
	CurrencyUSDTERC20 Currency = "USDT-ERC20"
)

// SupportedCurrencies lists the closed set of rails.
var SupportedCurrencies = []Currency{CurrencyUSDTTRC20, CurrencyUSDTERC20}

// Network describes the chain a rail settles on.
type Network struct {
	Name          string
	Confirmations int
	BlockTime     time.Duration
}

var (
	NetworkTron     = Network{Name: "TRON", Confirmations: 19, BlockTime: 3 * time.Second}
	NetworkEthereum = Network{Name: "ETHEREUM", Confirmations: 12, BlockTime: 15 * time.Second}
)

// IsValid reports whether c belongs to the supported set.
func (c Currency) IsValid() bool {
	for _, s := range SupportedCurrencies {
		if c == s {
			return true
		}
	}
	return false
}

// Network returns the chain the rail runs on.
func (c Currency) Network() (Network, bool) {
	switch c {
	case CurrencyUSDTTRC20:
		return NetworkTron, true
	case CurrencyUSDTERC20:
		return NetworkEthereum, true
	}
	return Network{}, false
}
