package conformance

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
)

// MinAccounts is the number of test accounts every suite needs. Index 0 is
// the contract owner, the rest are unrelated participants.
const MinAccounts = 4

var (
	ErrNoFactory         = errors.New("conformance: no token factory")
	ErrNoCreditFunc      = errors.New("conformance: no credit function")
	ErrNotEnoughAccounts = errors.New("conformance: not enough accounts")
)

// FactoryFunc deploys a fresh contract instance for one scenario
type FactoryFunc func() (Token, error)

// CreditFunc funds the account with the amount through whatever operation the
// contract offers for it
type CreditFunc func(token Token, to common.Address, am *amount.Amount) error

// HookFunc runs around each scenario with the instance under test
type HookFunc func(token Token) error

// Balance is an expected account balance of a freshly deployed instance
type Balance struct {
	Address common.Address
	Amount  *amount.Amount
}

// Allowance is an expected standing approval of a freshly deployed instance
type Allowance struct {
	Owner   common.Address
	Spender common.Address
	Amount  *amount.Amount
}

// Config describes one contract under test. Factory, Accounts and one of the
// credit callbacks are mandatory, everything else defaults.
type Config struct {
	// Accounts lists the test accounts. Accounts[0] owns the deployed
	// instance, Accounts[1:] hold nothing and have approved nothing unless
	// InitialBalances or InitialAllowances say otherwise.
	Accounts []common.Address

	// Factory deploys a fresh instance per scenario
	Factory FactoryFunc

	// Mint credits an account with newly created tokens. A mint credit
	// raises the total supply by the credited amount.
	Mint CreditFunc

	// Transfer credits an account out of an existing balance. A transfer
	// credit leaves the total supply unchanged. When both callbacks are
	// set Mint wins.
	Transfer CreditFunc

	// InitialSupply is the total supply right after deployment
	InitialSupply *amount.Amount

	// InitialBalances and InitialAllowances list the nonzero state the
	// factory leaves behind
	InitialBalances   []Balance
	InitialAllowances []Allowance

	// metadata expectations, each skipped when unset
	ExpectedName     string
	ExpectedSymbol   string
	ExpectedDecimals *big.Int

	// TestExtension adds the IncreaseApproval/DecreaseApproval scenarios
	TestExtension bool

	// RevertSignals are the error substrings accepted as an intentional
	// rejection, DefaultRevertSignals when empty
	RevertSignals []string

	// BeforeEach and AfterEach run around every scenario
	BeforeEach HookFunc
	AfterEach  HookFunc
}

// Resolve validates the configuration and returns a copy with the defaults
// filled in
func (cfg *Config) Resolve() (*Config, error) {
	if cfg.Factory == nil {
		return nil, errors.WithStack(ErrNoFactory)
	}
	if len(cfg.Accounts) < MinAccounts {
		return nil, errors.Wrapf(ErrNotEnoughAccounts, "got %v want %v", len(cfg.Accounts), MinAccounts)
	}
	if cfg.Mint == nil && cfg.Transfer == nil {
		return nil, errors.WithStack(ErrNoCreditFunc)
	}
	out := *cfg
	if out.InitialSupply == nil {
		out.InitialSupply = amount.NewAmount(0, 0)
	}
	if len(out.RevertSignals) == 0 {
		out.RevertSignals = DefaultRevertSignals
	}
	return &out, nil
}

// Owner returns the account owning the deployed instance
func (cfg *Config) Owner() common.Address {
	return cfg.Accounts[0]
}

func (cfg *Config) credit(token Token, to common.Address, am *amount.Amount) error {
	if cfg.Mint != nil {
		return cfg.Mint(token, to, am)
	}
	return cfg.Transfer(token, to, am)
}

// creditAddsSupply reports whether a credit raises the total supply
func (cfg *Config) creditAddsSupply() bool {
	return cfg.Mint != nil
}

// initialAllowance returns the configured standing approval of the pair, zero
// when the pair is not listed
func (cfg *Config) initialAllowance(owner common.Address, spender common.Address) *amount.Amount {
	for _, a := range cfg.InitialAllowances {
		if a.Owner == owner && a.Spender == spender {
			return a.Amount
		}
	}
	return amount.NewAmount(0, 0)
}

// initialBalance returns the configured starting balance of the account, zero
// when the account is not listed
func (cfg *Config) initialBalance(addr common.Address) *amount.Amount {
	for _, b := range cfg.InitialBalances {
		if b.Address == addr {
			return b.Amount
		}
	}
	return amount.NewAmount(0, 0)
}
