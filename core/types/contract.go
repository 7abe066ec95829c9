package types

import (
	"github.com/meverselabs/tokensuite/common"
)

// Contract defines Contract functions
type Contract interface {
	Address() common.Address
	Master() common.Address
	Init(addr common.Address, master common.Address)
	OnCreate(cc *ContractContext, Args interface{}) error
	Front() interface{}
}

// ContractDefine keeps the deploy record of a contract
type ContractDefine struct {
	Address common.Address
	Owner   common.Address
}

func (s *ContractDefine) Clone() *ContractDefine {
	return &ContractDefine{
		Address: s.Address,
		Owner:   s.Owner,
	}
}
