package conformance

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
)

func Test_LoadExpect(t *testing.T) {
	e, err := LoadExpect("testdata/token.toml")
	if err != nil {
		t.Fatal(err)
	}
	if e.Name != "MeverseTest" || e.Symbol != "MVT" {
		t.Fatalf("metadata %v %v", e.Name, e.Symbol)
	}
	if e.Decimals != 18 {
		t.Fatalf("decimals %v", e.Decimals)
	}
	if !e.Extension {
		t.Fatal("extension flag not set")
	}
}

func Test_Expect_Apply(t *testing.T) {
	cfg := &Config{
		Accounts: TestAccounts("expect-test", 4),
		Factory: func() (Token, error) {
			return nil, errors.New("not deployable")
		},
		Mint: func(token Token, to common.Address, am *amount.Amount) error {
			return nil
		},
	}
	e := &Expect{
		Name:     "X",
		Symbol:   "XT",
		Decimals: 6,
		Supply:   "100",
		Balances: []ExpectBalance{
			{Account: 0, Amount: "100"},
		},
		Allowances: []ExpectAllowance{
			{Owner: 0, Spender: 1, Amount: "2.5"},
		},
	}
	if err := e.Apply(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.ExpectedName != "X" || cfg.ExpectedSymbol != "XT" {
		t.Fatalf("metadata %v %v", cfg.ExpectedName, cfg.ExpectedSymbol)
	}
	if cfg.ExpectedDecimals.Int64() != 6 {
		t.Fatalf("decimals %v", cfg.ExpectedDecimals)
	}
	if !cfg.InitialSupply.Equal(amount.NewAmount(100, 0)) {
		t.Fatalf("supply %v", cfg.InitialSupply)
	}
	if len(cfg.InitialBalances) != 1 || cfg.InitialBalances[0].Address != cfg.Accounts[0] {
		t.Fatalf("balances %v", cfg.InitialBalances)
	}
	if len(cfg.InitialAllowances) != 1 || !cfg.InitialAllowances[0].Amount.Equal(amount.MustParseAmount("2.5")) {
		t.Fatalf("allowances %v", cfg.InitialAllowances)
	}
}

func Test_Expect_Apply_IndexOutOfRange(t *testing.T) {
	cfg := &Config{Accounts: TestAccounts("expect-test", 4)}
	e := &Expect{Balances: []ExpectBalance{{Account: 9, Amount: "1"}}}
	if err := e.Apply(cfg); err == nil {
		t.Fatal("out of range index must be rejected")
	}
	e = &Expect{Allowances: []ExpectAllowance{{Owner: 0, Spender: 9, Amount: "1"}}}
	if err := e.Apply(cfg); err == nil {
		t.Fatal("out of range index must be rejected")
	}
}
