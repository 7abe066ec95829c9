package token

import (
	"math/big"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
	"github.com/meverselabs/tokensuite/core/types"
)

func (cont *TokenContract) Front() interface{} {
	return &front{
		cont: cont,
	}
}

type front struct {
	cont *TokenContract
}

func (f *front) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.Transfer(cc, To, Amount)
	return err == nil, err
}

func (f *front) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.Approve(cc, spender, Amount)
	return err == nil, err
}

func (f *front) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) (bool, error) {
	err := f.cont.TransferFrom(cc, From, To, Amount)
	return err == nil, err
}

func (f *front) IncreaseApproval(cc *types.ContractContext, spender common.Address, Added *amount.Amount) (bool, error) {
	err := f.cont.IncreaseApproval(cc, spender, Added)
	return err == nil, err
}

func (f *front) DecreaseApproval(cc *types.ContractContext, spender common.Address, Subtracted *amount.Amount) (bool, error) {
	err := f.cont.DecreaseApproval(cc, spender, Subtracted)
	return err == nil, err
}

func (f *front) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return f.cont.Mint(cc, To, Amount)
}

func (f *front) Burn(cc *types.ContractContext, Amount *amount.Amount) error {
	return f.cont.Burn(cc, Amount)
}

func (f *front) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	return f.cont.SetMinter(cc, To, Is)
}

func (f *front) Name(cc *types.ContractContext) string {
	return f.cont.Name(cc)
}

func (f *front) Symbol(cc *types.ContractContext) string {
	return f.cont.Symbol(cc)
}

func (f *front) Decimals(cc *types.ContractContext) *big.Int {
	return f.cont.Decimals(cc)
}

func (f *front) TotalSupply(cc *types.ContractContext) *amount.Amount {
	return f.cont.TotalSupply(cc)
}

func (f *front) BalanceOf(cc *types.ContractContext, from common.Address) *amount.Amount {
	return f.cont.BalanceOf(cc, from)
}

func (f *front) Allowance(cc *types.ContractContext, owner common.Address, spender common.Address) *amount.Amount {
	return f.cont.Allowance(cc, owner, spender)
}
