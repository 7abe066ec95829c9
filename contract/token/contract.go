package token

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
	"github.com/meverselabs/tokensuite/core/types"
)

type TokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TokenContract) Address() common.Address {
	return cont.addr
}

func (cont *TokenContract) Master() common.Address {
	return cont.master
}

func (cont *TokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args interface{}) error {
	data, ok := Args.(*TokenContractConstruction)
	if !ok {
		return errors.New("Token: INVALID_CONSTRUCTION")
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	for k, v := range data.InitialSupplyMap {
		if v.IsMinus() {
			return errors.Errorf("invalid initial supply %v", v.String())
		}
		cont.addBalance(cc, k, v)
		cont.addSupply(cc, v)
		cc.EmitEvent(types.EventTransfer, common.ZeroAddr, k, v.Clone())
	}
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *TokenContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) {
	bal := cont.BalanceOf(cc, addr).Add(am)
	cont.setBalance(cc, addr, bal)
}

func (cont *TokenContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Errorf("Token: TRANSFER_EXCEED_BALANCE balance %v amount %v from %v", bal.String(), am.String(), addr.String())
	}
	cont.setBalance(cc, addr, bal.Sub(am))
	return nil
}

func (cont *TokenContract) setBalance(cc *types.ContractContext, addr common.Address, bal *amount.Amount) {
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())
	}
}

func (cont *TokenContract) addSupply(cc *types.ContractContext, am *amount.Amount) {
	total := cont.TotalSupply(cc).Add(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
}

func (cont *TokenContract) subSupply(cc *types.ContractContext, am *amount.Amount) error {
	total := cont.TotalSupply(cc)
	if total.Less(am) {
		return errors.Errorf("Token: BURN_EXCEED_SUPPLY supply %v amount %v", total.String(), am.String())
	}
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Sub(am).Bytes())
	return nil
}

func (cont *TokenContract) _approve(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) {
	cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), Amount.Bytes())
	cc.EmitEvent(types.EventApproval, owner, spender, Amount.Clone())
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Transfer moves the amount from the acting account to the target.
// The Transfer event is emitted on every call, a zero amount and a
// self-transfer included.
func (cont *TokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if Amount.IsMinus() {
		return errors.New("Token: TRANSFER_NEGATIVE_AMOUNT")
	}
	fromBalance := cont.BalanceOf(cc, cc.From())
	if fromBalance.Less(Amount) {
		return errors.Errorf("Token: TRANSFER_EXCEED_BALANCE balance %v amount %v from %v to %v", fromBalance.String(), Amount.String(), cc.From().String(), To.String())
	}
	if !Amount.IsZero() {
		if err := cont.subBalance(cc, cc.From(), Amount); err != nil {
			return err
		}
		cont.addBalance(cc, To, Amount)
	}
	cc.EmitEvent(types.EventTransfer, cc.From(), To, Amount.Clone())
	return nil
}

// Approve overwrites the allowance of the spender with the given amount.
// The Approval event carries the new absolute value and is emitted even
// when the value did not change.
func (cont *TokenContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	if Amount.IsMinus() {
		return errors.New("Token: APPROVE_NEGATIVE_AMOUNT")
	}
	cont._approve(cc, cc.From(), spender, Amount)
	return nil
}

// TransferFrom moves the amount out of the From account using the acting
// account's allowance. The allowance is debited by exactly the transferred
// amount, also when From equals To.
func (cont *TokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if Amount.IsMinus() {
		return errors.New("Token: TRANSFERFROM_NEGATIVE_AMOUNT")
	}
	if !Amount.IsZero() {
		balance := cont.BalanceOf(cc, From)
		if balance.Less(Amount) {
			return errors.Errorf("Token: TRANSFERFROM_EXCEED_BALANCE balance %v amount %v from %v", balance.String(), Amount.String(), From.String())
		}
		allowedValue := cont.Allowance(cc, From, cc.From())
		if allowedValue.Less(Amount) {
			return errors.Errorf("Token: TRANSFERFROM_EXCEED_ALLOWANCE allowance %v amount %v owner %v spender %v", allowedValue.String(), Amount.String(), From.String(), cc.From().String())
		}
		cc.SetAccountData(From, MakeAllowanceTokenKey(cc.From()), allowedValue.Sub(Amount).Bytes())
		if err := cont.subBalance(cc, From, Amount); err != nil {
			return err
		}
		cont.addBalance(cc, To, Amount)
	}
	cc.EmitEvent(types.EventTransfer, From, To, Amount.Clone())
	return nil
}

// IncreaseApproval adds to the current allowance. It rejects a sum past the
// maximum representable amount.
func (cont *TokenContract) IncreaseApproval(cc *types.ContractContext, spender common.Address, Added *amount.Amount) error {
	if Added.IsMinus() {
		return errors.New("Token: INCREASEAPPROVAL_NEGATIVE_AMOUNT")
	}
	sum := cont.Allowance(cc, cc.From(), spender).Add(Added)
	if amount.MaxUint256.Less(sum) {
		return errors.New("Token: APPROVE_OVERFLOW")
	}
	cont._approve(cc, cc.From(), spender, sum)
	return nil
}

// DecreaseApproval subtracts from the current allowance, clamping at zero.
// It never rejects for a too-large subtraction.
func (cont *TokenContract) DecreaseApproval(cc *types.ContractContext, spender common.Address, Subtracted *amount.Amount) error {
	if Subtracted.IsMinus() {
		return errors.New("Token: DECREASEAPPROVAL_NEGATIVE_AMOUNT")
	}
	n := cont.Allowance(cc, cc.From(), spender).Sub(Subtracted)
	if n.IsMinus() {
		n = amount.NewAmount(0, 0)
	}
	cont._approve(cc, cc.From(), spender, n)
	return nil
}

func (cont *TokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	isMinter := cont.IsMinter(cc, cc.From())
	if cc.From() != cont.Master() && !isMinter {
		return errors.New(cc.From().String() + ": not token minter")
	}
	if Amount.IsMinus() {
		return errors.New("Token: MINT_NEGATIVE_AMOUNT")
	}
	cont.addBalance(cc, To, Amount)
	cont.addSupply(cc, Amount)
	cc.EmitEvent(types.EventTransfer, common.ZeroAddr, To, Amount.Clone())
	return nil
}

func (cont *TokenContract) Burn(cc *types.ContractContext, Amount *amount.Amount) error {
	if Amount.IsMinus() {
		return errors.New("Token: BURN_NEGATIVE_AMOUNT")
	}
	if err := cont.subBalance(cc, cc.From(), Amount); err != nil {
		return err
	}
	if err := cont.subSupply(cc, Amount); err != nil {
		return err
	}
	cc.EmitEvent(types.EventTransfer, cc.From(), common.ZeroAddr, Amount.Clone())
	return nil
}

func (cont *TokenContract) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	if cc.From() != cont.Master() {
		return errors.New("not token master")
	}
	isMinter := cont.IsMinter(cc, To)
	if Is {
		if isMinter {
			return errors.New("already token minter")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, []byte{1})
	} else {
		if !isMinter {
			return errors.New("not token minter")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, nil)
	}
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) TotalSupply(cc *types.ContractContext) *amount.Amount {
	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) Decimals(cc *types.ContractContext) *big.Int {
	return big.NewInt(amount.FractionalCount)
}

func (cont *TokenContract) BalanceOf(cc *types.ContractContext, from common.Address) *amount.Amount {
	bs := cc.AccountData(from, []byte{tagTokenAmount})
	return amount.NewAmountFromBytes(bs)
}

func (cont *TokenContract) IsMinter(cc *types.ContractContext, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagTokenMinter})
	if len(bs) == 1 && bs[0] == 1 {
		return true
	}
	return false
}

func (cont *TokenContract) Allowance(cc *types.ContractContext, _owner common.Address, _spender common.Address) *amount.Amount {
	bs := cc.AccountData(_owner, MakeAllowanceTokenKey(_spender))
	return amount.NewAmountFromBytes(bs)
}
