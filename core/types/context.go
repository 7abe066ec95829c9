package types

import (
	"encoding/binary"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/meverselabs/tokensuite/common"
)

// Context is an in-memory state using the context data stack
type Context struct {
	stack []*ContextData
}

// NewContext returns a Context with an empty state
func NewContext() *Context {
	ctx := &Context{
		stack: []*ContextData{NewContextData(nil)},
	}
	return ctx
}

// Top returns the top snapshot
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// Snapshot push a snapshot and returns the snapshot number of it
func (ctx *Context) Snapshot() int {
	ctd := NewContextData(ctx.Top())
	ctx.stack[len(ctx.stack)-1].isTop = false
	ctx.stack = append(ctx.stack, ctd)
	return len(ctx.stack)
}

// Revert removes snapshots after the snapshot number
func (ctx *Context) Revert(sn int) {
	if len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
	ctx.stack[len(ctx.stack)-1].isTop = true
}

// Commit apply snapshots to the top after the snapshot number
func (ctx *Context) Commit(sn int) {
	for len(ctx.stack) >= sn {
		ctd := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		top := ctx.Top()
		for addr, cont := range ctd.ContractMap {
			top.ContractMap[addr] = cont
		}
		for addr, def := range ctd.ContractDefineMap {
			top.ContractDefineMap[addr] = def
		}
		for key, value := range ctd.DataMap {
			delete(top.DeletedDataMap, key)
			top.DataMap[key] = value
		}
		for key := range ctd.DeletedDataMap {
			delete(top.DataMap, key)
			top.DeletedDataMap[key] = true
		}
		top.seq += ctd.seq
	}
	ctx.Top().isTop = true
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}

// IsContract returns is the contract or not
func (ctx *Context) IsContract(addr common.Address) bool {
	return ctx.Top().IsContract(addr)
}

// Contract returns the contract of the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	return ctx.Top().Contract(addr)
}

// ContractContext returns a ContractContext of the contract with the acting account
func (ctx *Context) ContractContext(cont Contract, from common.Address) *ContractContext {
	cc := &ContractContext{
		cont: cont.Address(),
		from: from,
		ctx:  ctx,
	}
	return cc
}

// DeployContract deploys the contract to the context and calls OnCreate of it
func (ctx *Context) DeployContract(owner common.Address, cont Contract, Args interface{}) (common.Address, error) {
	top := ctx.Top()
	bs := make([]byte, 8)
	binary.BigEndian.PutUint64(bs, top.NextSeq())
	top.AddSeq()
	h := crypto.Keccak256(owner[:], bs)
	addr := common.BytesToAddress(h[12:])

	cont.Init(addr, owner)
	if err := top.SetContract(cont, &ContractDefine{
		Address: addr,
		Owner:   owner,
	}); err != nil {
		return common.ZeroAddr, err
	}

	sn := ctx.Snapshot()
	cc := ctx.ContractContext(cont, owner)
	intr := NewInteractor(ctx)
	intr.Bind(cc)
	if err := cont.OnCreate(cc, Args); err != nil {
		ctx.Revert(sn)
		return common.ZeroAddr, err
	}
	ctx.Commit(sn)
	return addr, nil
}

// Dump prints the top context data of the context
func (ctx *Context) Dump() string {
	return spew.Sdump(ctx.Top().Flatten())
}
