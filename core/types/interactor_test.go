package types

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
)

type counterContract struct {
	addr   common.Address
	master common.Address
}

func (cont *counterContract) Address() common.Address {
	return cont.addr
}

func (cont *counterContract) Master() common.Address {
	return cont.master
}

func (cont *counterContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *counterContract) OnCreate(cc *ContractContext, Args interface{}) error {
	return nil
}

func (cont *counterContract) Front() interface{} {
	return &counterFront{cont: cont}
}

type counterFront struct {
	cont *counterContract
}

func (f *counterFront) Add(cc *ContractContext, delta *amount.Amount) (*amount.Amount, error) {
	if delta.IsMinus() {
		return nil, errors.New("counter: negative delta")
	}
	sum := amount.NewAmountFromBytes(cc.AccountData(cc.From(), []byte("sum"))).Add(delta)
	cc.SetAccountData(cc.From(), []byte("sum"), sum.Bytes())
	cc.EmitEvent("Added", cc.From(), sum.Clone())
	return sum, nil
}

func deployCounter(t *testing.T, ctx *Context, owner common.Address) common.Address {
	addr, err := ctx.DeployContract(owner, &counterContract{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return addr
}

func Test_Interactor_Exec(t *testing.T) {
	ctx := NewContext()
	owner := common.BytesToAddress([]byte{1})
	addr := deployCounter(t, ctx, owner)

	cont, err := ctx.Contract(addr)
	if err != nil {
		t.Fatal(err)
	}
	intr := NewInteractor(ctx)
	cc := ctx.ContractContext(cont, owner)
	intr.Bind(cc)

	is, err := cc.Exec(cc, addr, "Add", []interface{}{amount.NewAmount(3, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if len(is) != 1 || !is[0].(*amount.Amount).Equal(amount.NewAmount(3, 0)) {
		t.Fatalf("result %v", is)
	}

	is, err = cc.Exec(cc, addr, "Add", []interface{}{amount.NewAmount(2, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if !is[0].(*amount.Amount).Equal(amount.NewAmount(5, 0)) {
		t.Fatalf("sum %v", is[0])
	}

	evs := intr.EventList()
	if len(evs) != 2 || evs[0].Name != "Added" || evs[1].Name != "Added" {
		t.Fatalf("events %v", evs)
	}
	if evs[0].Contract != addr {
		t.Fatal("event contract address wrong")
	}
}

func Test_Interactor_BigIntConversion(t *testing.T) {
	ctx := NewContext()
	owner := common.BytesToAddress([]byte{1})
	addr := deployCounter(t, ctx, owner)

	cont, _ := ctx.Contract(addr)
	intr := NewInteractor(ctx)
	cc := ctx.ContractContext(cont, owner)
	intr.Bind(cc)

	is, err := cc.Exec(cc, addr, "Add", []interface{}{big.NewInt(7)})
	if err != nil {
		t.Fatal(err)
	}
	if is[0].(*amount.Amount).Cmp(big.NewInt(7)) != 0 {
		t.Fatalf("sum %v", is[0])
	}
}

func Test_Interactor_Errors(t *testing.T) {
	ctx := NewContext()
	owner := common.BytesToAddress([]byte{1})
	addr := deployCounter(t, ctx, owner)

	cont, _ := ctx.Contract(addr)
	intr := NewInteractor(ctx)
	cc := ctx.ContractContext(cont, owner)
	intr.Bind(cc)

	if _, err := cc.Exec(cc, addr, "Unknown", nil); errors.Cause(err) != ErrInvalidMethodName {
		t.Fatalf("got %v", err)
	}
	if _, err := cc.Exec(cc, addr, "Add", nil); errors.Cause(err) != ErrInvalidInputCount {
		t.Fatalf("got %v", err)
	}
	if _, err := cc.Exec(cc, addr, "Add", []interface{}{"seven"}); errors.Cause(err) != ErrInvalidInputType {
		t.Fatalf("got %v", err)
	}
	if _, err := cc.Exec(cc, addr, "Add", []interface{}{amount.NewAmount(0, 0).Sub(amount.NewAmount(1, 0))}); err == nil {
		t.Fatal("contract error must surface")
	}
}

func Test_DeployContract_DistinctAddresses(t *testing.T) {
	ctx := NewContext()
	owner := common.BytesToAddress([]byte{1})
	a := deployCounter(t, ctx, owner)
	b := deployCounter(t, ctx, owner)
	if a == b {
		t.Fatal("deployments must get distinct addresses")
	}
	if !ctx.IsContract(a) || !ctx.IsContract(b) {
		t.Fatal("deployed contracts must be registered")
	}
}
