package conformance

import (
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/meverselabs/tokensuite/common"
)

// TestAccounts derives n deterministic test account addresses from the seed.
// The first address is conventionally used as the contract owner.
func TestAccounts(seed string, n int) []common.Address {
	accounts := make([]common.Address, 0, n)
	for i := 0; i < n; i++ {
		h := crypto.Keccak256([]byte(seed), []byte{byte(i)})
		accounts = append(accounts, common.BytesToAddress(h[12:]))
	}
	return accounts
}
