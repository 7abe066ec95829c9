package conformance

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
)

// fixture holds one fresh contract instance and its cached decimal scale
type fixture struct {
	cfg   *Config
	token Token
	scale *big.Int
}

func newFixture(cfg *Config) (*fixture, error) {
	token, err := cfg.Factory()
	if err != nil {
		return nil, err
	}
	f := &fixture{
		cfg:   cfg,
		token: token,
		scale: big.NewInt(1),
	}
	// contracts without a decimals query are driven in base units
	if is, err := token.Call(cfg.Owner(), "Decimals"); err == nil && len(is) == 1 {
		if d, ok := is[0].(*big.Int); ok && d.Sign() >= 0 {
			f.scale = new(big.Int).Exp(big.NewInt(10), d, nil)
		}
	}
	if cfg.BeforeEach != nil {
		if err := cfg.BeforeEach(token); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *fixture) close() error {
	if f.cfg.AfterEach != nil {
		return f.cfg.AfterEach(f.token)
	}
	return nil
}

// units scales a whole-token count into base units using the cached scale
func (f *fixture) units(n int64) *amount.Amount {
	return &amount.Amount{Int: new(big.Int).Mul(big.NewInt(n), f.scale)}
}

func (f *fixture) credit(to common.Address, am *amount.Amount) error {
	return f.cfg.credit(f.token, to, am)
}

func (f *fixture) totalSupply() (*amount.Amount, error) {
	return f.queryAmount("TotalSupply")
}

func (f *fixture) balanceOf(addr common.Address) (*amount.Amount, error) {
	return f.queryAmount("BalanceOf", addr)
}

func (f *fixture) allowance(owner common.Address, spender common.Address) (*amount.Amount, error) {
	return f.queryAmount("Allowance", owner, spender)
}

func (f *fixture) queryAmount(method string, args ...interface{}) (*amount.Amount, error) {
	is, err := f.token.Call(f.cfg.Owner(), method, args...)
	if err != nil {
		return nil, err
	}
	if len(is) != 1 {
		return nil, errors.Errorf("%v returned %v values", method, len(is))
	}
	return toAmount(is[0])
}

func (f *fixture) queryString(method string) (string, error) {
	is, err := f.token.Call(f.cfg.Owner(), method)
	if err != nil {
		return "", err
	}
	if len(is) != 1 {
		return "", errors.Errorf("%v returned %v values", method, len(is))
	}
	s, ok := is[0].(string)
	if !ok {
		return "", errors.Errorf("%v returned %T not string", method, is[0])
	}
	return s, nil
}

func toAmount(v interface{}) (*amount.Amount, error) {
	switch tv := v.(type) {
	case *amount.Amount:
		return tv, nil
	case *big.Int:
		return &amount.Amount{Int: tv}, nil
	default:
		return nil, errors.Errorf("%T is not an amount", v)
	}
}
