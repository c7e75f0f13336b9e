package domain

// DepositWallet is the destination generated for one deposit. Both fields are
// opaque to the gateway.
type DepositWallet struct {
	Address string `json:"address"`
	Secret  string `json:"-"`
}
