package conformance_test

import (
	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
	"github.com/meverselabs/tokensuite/conformance"
	"github.com/meverselabs/tokensuite/contract/token"
	"github.com/meverselabs/tokensuite/core/types"
)

var accounts = conformance.TestAccounts("tokensuite", 5)

// mintingConfig drives the reference token with a mint credit, so credits
// raise the total supply. Metadata expectations come from the manifest.
func mintingConfig() *conformance.Config {
	owner := accounts[0]
	cfg := &conformance.Config{
		Accounts: accounts,
		Factory: func() (conformance.Token, error) {
			ctx := types.NewContext()
			addr, err := ctx.DeployContract(owner, &token.TokenContract{}, &token.TokenContractConstruction{
				Name:   "MeverseTest",
				Symbol: "MVT",
			})
			if err != nil {
				return nil, err
			}
			return conformance.NewContextToken(ctx, addr), nil
		},
		Mint: func(tok conformance.Token, to common.Address, am *amount.Amount) error {
			_, err := tok.Send(owner, "Mint", to, am)
			return err
		},
	}
	e, err := conformance.LoadExpect("testdata/token.toml")
	if err != nil {
		panic(err)
	}
	if err := e.Apply(cfg); err != nil {
		panic(err)
	}
	return cfg
}

// premintConfig drives the same contract deployed with a preminted supply and
// a transfer credit, so credits move tokens out of the owner's balance and
// the factory leaves a standing approval behind.
func premintConfig() *conformance.Config {
	owner := accounts[0]
	premint := amount.NewAmount(1000000, 0)
	seeded := amount.NewAmount(7, 0)
	return &conformance.Config{
		Accounts: accounts,
		Factory: func() (conformance.Token, error) {
			ctx := types.NewContext()
			addr, err := ctx.DeployContract(owner, &token.TokenContract{}, &token.TokenContractConstruction{
				Name:   "MeverseTest",
				Symbol: "MVT",
				InitialSupplyMap: map[common.Address]*amount.Amount{
					owner: premint.Clone(),
				},
			})
			if err != nil {
				return nil, err
			}
			tok := conformance.NewContextToken(ctx, addr)
			if _, err := tok.Send(owner, "Approve", accounts[1], seeded.Clone()); err != nil {
				return nil, err
			}
			return tok, nil
		},
		Transfer: func(tok conformance.Token, to common.Address, am *amount.Amount) error {
			_, err := tok.Send(owner, "Transfer", to, am)
			return err
		},
		InitialSupply: premint,
		InitialBalances: []conformance.Balance{
			{Address: owner, Amount: premint},
		},
		InitialAllowances: []conformance.Allowance{
			{Owner: owner, Spender: accounts[1], Amount: seeded},
		},
		TestExtension: true,
	}
}

var _ = conformance.RunSuite("token contract with mint credit", mintingConfig())

var _ = conformance.RunSuite("token contract with transfer credit", premintConfig())
