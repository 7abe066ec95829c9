package conformance

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
)

func testConfig() *Config {
	return &Config{
		Accounts: TestAccounts("config-test", 4),
		Factory: func() (Token, error) {
			return nil, errors.New("not deployable")
		},
		Mint: func(token Token, to common.Address, am *amount.Amount) error {
			return nil
		},
	}
}

func Test_Config_Resolve(t *testing.T) {
	cfg, err := testConfig().Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.InitialSupply.IsZero() {
		t.Fatalf("default initial supply %v", cfg.InitialSupply)
	}
	if len(cfg.RevertSignals) != len(DefaultRevertSignals) {
		t.Fatalf("default revert signals %v", cfg.RevertSignals)
	}
	if !cfg.creditAddsSupply() {
		t.Fatal("mint credit must add supply")
	}
}

func Test_Config_Resolve_NoFactory(t *testing.T) {
	cfg := testConfig()
	cfg.Factory = nil
	if _, err := cfg.Resolve(); errors.Cause(err) != ErrNoFactory {
		t.Fatalf("got %v", err)
	}
}

func Test_Config_Resolve_NotEnoughAccounts(t *testing.T) {
	cfg := testConfig()
	cfg.Accounts = cfg.Accounts[:3]
	if _, err := cfg.Resolve(); errors.Cause(err) != ErrNotEnoughAccounts {
		t.Fatalf("got %v", err)
	}
}

func Test_Config_Resolve_NoCredit(t *testing.T) {
	cfg := testConfig()
	cfg.Mint = nil
	if _, err := cfg.Resolve(); errors.Cause(err) != ErrNoCreditFunc {
		t.Fatalf("got %v", err)
	}
}

func Test_Config_CreditPreference(t *testing.T) {
	cfg := testConfig()
	cfg.Transfer = func(token Token, to common.Address, am *amount.Amount) error {
		return nil
	}
	if !cfg.creditAddsSupply() {
		t.Fatal("mint must win over transfer")
	}
	cfg.Mint = nil
	if cfg.creditAddsSupply() {
		t.Fatal("transfer credit must not add supply")
	}
}

func Test_Config_InitialLookups(t *testing.T) {
	cfg := testConfig()
	cfg.InitialBalances = []Balance{
		{Address: cfg.Accounts[1], Amount: amount.NewAmount(3, 0)},
	}
	cfg.InitialAllowances = []Allowance{
		{Owner: cfg.Accounts[1], Spender: cfg.Accounts[2], Amount: amount.NewAmount(5, 0)},
	}
	if !cfg.initialBalance(cfg.Accounts[1]).Equal(amount.NewAmount(3, 0)) {
		t.Fatal("configured balance not found")
	}
	if !cfg.initialBalance(cfg.Accounts[2]).IsZero() {
		t.Fatal("unlisted balance must be zero")
	}
	if !cfg.initialAllowance(cfg.Accounts[1], cfg.Accounts[2]).Equal(amount.NewAmount(5, 0)) {
		t.Fatal("configured allowance not found")
	}
	if !cfg.initialAllowance(cfg.Accounts[2], cfg.Accounts[1]).IsZero() {
		t.Fatal("allowance pairs must be directional")
	}
}

func Test_TestAccounts_Deterministic(t *testing.T) {
	a := TestAccounts("seed", 4)
	b := TestAccounts("seed", 4)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("account %v differs", i)
		}
	}
	c := TestAccounts("other", 4)
	if a[0] == c[0] {
		t.Fatal("seeds must produce distinct accounts")
	}
}
