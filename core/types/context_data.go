package types

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/tidwall/btree"

	"github.com/meverselabs/tokensuite/common"
)

// ContextData is a state data of the context
type ContextData struct {
	Parent            *ContextData
	ContractMap       map[common.Address]Contract
	ContractDefineMap map[common.Address]*ContractDefine
	DataMap           map[string][]byte
	DeletedDataMap    map[string]bool
	isTop             bool
	seq               uint64
}

// NewContextData returns a ContextData
func NewContextData(Parent *ContextData) *ContextData {
	ctd := &ContextData{
		Parent:            Parent,
		ContractMap:       map[common.Address]Contract{},
		ContractDefineMap: map[common.Address]*ContractDefine{},
		DataMap:           map[string][]byte{},
		DeletedDataMap:    map[string]bool{},
		isTop:             true,
	}
	return ctd
}

// IsContract returns is the contract or not
func (ctd *ContextData) IsContract(addr common.Address) bool {
	if _, has := ctd.ContractMap[addr]; has {
		return true
	}
	if ctd.Parent != nil {
		return ctd.Parent.IsContract(addr)
	}
	return false
}

// Contract returns the contract of the address
func (ctd *ContextData) Contract(addr common.Address) (Contract, error) {
	if cont, has := ctd.ContractMap[addr]; has {
		return cont, nil
	}
	if ctd.Parent != nil {
		return ctd.Parent.Contract(addr)
	}
	return nil, errors.WithStack(ErrNotExistContract)
}

// SetContract registers the deployed contract to the snapshot
func (ctd *ContextData) SetContract(cont Contract, def *ContractDefine) error {
	if ctd.IsContract(def.Address) {
		return errors.WithStack(ErrExistAddress)
	}
	ctd.ContractMap[def.Address] = cont
	ctd.ContractDefineMap[def.Address] = def
	return nil
}

// NextSeq returns the next sequence number of the snapshot stack
func (ctd *ContextData) NextSeq() uint64 {
	var seq uint64
	for p := ctd; p != nil; p = p.Parent {
		seq += p.seq
	}
	return seq
}

// AddSeq increases the sequence number of the top snapshot
func (ctd *ContextData) AddSeq() {
	ctd.seq++
}

// Data returns the data from the snapshot or its parents
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if _, has := ctd.DeletedDataMap[key]; has {
		return nil
	}
	if value, has := ctd.DataMap[key]; has {
		return value
	}
	if ctd.Parent != nil {
		value := ctd.Parent.Data(cont, addr, name)
		if len(value) > 0 {
			if ctd.isTop {
				nvalue := make([]byte, len(value))
				copy(nvalue, value)
				return nvalue
			}
			return value
		}
		return nil
	}
	return nil
}

// SetData inserts the data to the snapshot
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := string(cont[:]) + string(addr[:]) + string(name)
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	} else {
		delete(ctd.DeletedDataMap, key)
		ctd.DataMap[key] = value
	}
}

// DataEntry is a flattened key-value pair of the snapshot chain
type DataEntry struct {
	Key   string
	Value []byte
}

type dataItem struct {
	key   string
	value []byte
}

func (di *dataItem) Less(item btree.Item, ctx interface{}) bool {
	return di.key < item.(*dataItem).key
}

// Flatten returns the merged key-value pairs of the snapshot chain ordered by key
func (ctd *ContextData) Flatten() []DataEntry {
	keys := btree.New(16, nil)
	var walk func(p *ContextData)
	walk = func(p *ContextData) {
		if p.Parent != nil {
			walk(p.Parent)
		}
		for key := range p.DeletedDataMap {
			keys.Delete(&dataItem{key: key})
		}
		for key, value := range p.DataMap {
			keys.ReplaceOrInsert(&dataItem{key: key, value: value})
		}
	}
	walk(ctd)
	list := make([]DataEntry, 0, keys.Len())
	keys.Ascend(func(item btree.Item) bool {
		di := item.(*dataItem)
		list = append(list, DataEntry{Key: di.key, Value: di.value})
		return true
	})
	return list
}

// Dump prints the data of the snapshot chain
func (ctd *ContextData) Dump() string {
	result := ""
	for _, it := range ctd.Flatten() {
		result += hex.EncodeToString([]byte(it.Key)) + ": " + hex.EncodeToString(it.Value) + "\n"
	}
	return result
}
