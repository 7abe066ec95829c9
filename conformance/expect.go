package conformance

import (
	"math/big"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common/amount"
)

// Expect is a TOML expectation manifest of a contract under test. Amount
// strings use the fixed 18 decimal notation of the amount package.
type Expect struct {
	Name       string            `toml:"name"`
	Symbol     string            `toml:"symbol"`
	Decimals   int64             `toml:"decimals"`
	Supply     string            `toml:"supply"`
	Extension  bool              `toml:"extension"`
	Balances   []ExpectBalance   `toml:"balance"`
	Allowances []ExpectAllowance `toml:"allowance"`
}

// ExpectBalance is an expected starting balance keyed by account index
type ExpectBalance struct {
	Account int    `toml:"account"`
	Amount  string `toml:"amount"`
}

// ExpectAllowance is an expected standing approval keyed by account indexes
type ExpectAllowance struct {
	Owner   int    `toml:"owner"`
	Spender int    `toml:"spender"`
	Amount  string `toml:"amount"`
}

// LoadExpect reads an expectation manifest. An absent decimals entry stays
// unset rather than asserting zero.
func LoadExpect(path string) (*Expect, error) {
	e := &Expect{Decimals: -1}
	if _, err := toml.DecodeFile(path, e); err != nil {
		return nil, errors.WithStack(err)
	}
	return e, nil
}

// Apply merges the manifest into the configuration
func (e *Expect) Apply(cfg *Config) error {
	if e.Name != "" {
		cfg.ExpectedName = e.Name
	}
	if e.Symbol != "" {
		cfg.ExpectedSymbol = e.Symbol
	}
	if e.Decimals >= 0 {
		cfg.ExpectedDecimals = big.NewInt(e.Decimals)
	}
	if e.Supply != "" {
		am, err := amount.ParseAmount(e.Supply)
		if err != nil {
			return err
		}
		cfg.InitialSupply = am
	}
	if e.Extension {
		cfg.TestExtension = true
	}
	for _, b := range e.Balances {
		if b.Account < 0 || b.Account >= len(cfg.Accounts) {
			return errors.Errorf("balance account index %v out of range", b.Account)
		}
		am, err := amount.ParseAmount(b.Amount)
		if err != nil {
			return err
		}
		cfg.InitialBalances = append(cfg.InitialBalances, Balance{
			Address: cfg.Accounts[b.Account],
			Amount:  am,
		})
	}
	for _, a := range e.Allowances {
		if a.Owner < 0 || a.Owner >= len(cfg.Accounts) {
			return errors.Errorf("allowance owner index %v out of range", a.Owner)
		}
		if a.Spender < 0 || a.Spender >= len(cfg.Accounts) {
			return errors.Errorf("allowance spender index %v out of range", a.Spender)
		}
		am, err := amount.ParseAmount(a.Amount)
		if err != nil {
			return err
		}
		cfg.InitialAllowances = append(cfg.InitialAllowances, Allowance{
			Owner:   cfg.Accounts[a.Owner],
			Spender: cfg.Accounts[a.Spender],
			Amount:  am,
		})
	}
	return nil
}
