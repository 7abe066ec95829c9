package types

import (
	"github.com/meverselabs/tokensuite/common"
)

// ExecFunc executes a method of the contract at the address with the given arguments
type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

// ContractContext is an context for the contract
type ContractContext struct {
	cont common.Address
	from common.Address
	ctx  *Context
	Exec ExecFunc
	emit func(*Event)
}

// From returns current signer address
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// ContractAddress returns the address of the executing contract
func (cc *ContractContext) ContractAddress() common.Address {
	return cc.cont
}

// IsContract returns is the contract or not
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.IsContract(addr)
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.Top().SetData(cc.cont, common.Address{}, name, value)
}

// AccountData returns the account data from the top snapshot
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Top().Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data to the top snapshot
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.Top().SetData(cc.cont, addr, name, value)
}

// EmitEvent records an event of the executing contract
func (cc *ContractContext) EmitEvent(name string, args ...interface{}) {
	if cc.emit == nil {
		return
	}
	cc.emit(NewEvent(cc.cont, name, args...))
}
