package types

import (
	"math/big"
	"reflect"

	"github.com/bluele/gcache"
	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
)

var (
	errType    = reflect.TypeOf((*error)(nil)).Elem()
	ccType     = reflect.TypeOf(&ContractContext{})
	bigIntType = reflect.TypeOf(&big.Int{})
	amountType = reflect.TypeOf(&amount.Amount{})
)

// method lookups are stable per front type, keep them in a shared LRU
var methodCache = gcache.New(500).LRU().Build()

// Interactor dispatches contract calls and collects the emitted events
type Interactor struct {
	ctx       *Context
	eventList []*Event
}

// NewInteractor returns a Interactor of the context
func NewInteractor(ctx *Context) *Interactor {
	return &Interactor{
		ctx:       ctx,
		eventList: []*Event{},
	}
}

// AddEvent appends the event to the list of the interactor
func (i *Interactor) AddEvent(ev *Event) {
	i.eventList = append(i.eventList, ev)
}

// EventList returns the events collected by the interactor in emission order
func (i *Interactor) EventList() []*Event {
	return i.eventList
}

// Receipt returns a Receipt carrying the collected events
func (i *Interactor) Receipt() *Receipt {
	return &Receipt{Events: i.eventList}
}

// Bind wires the contract context to the interactor
func (i *Interactor) Bind(cc *ContractContext) {
	cc.Exec = i.Exec
	cc.emit = i.AddEvent
}

// Exec executes the method of the contract at the address with the given arguments
func (i *Interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) ([]interface{}, error) {
	if MethodName == "" {
		return nil, errors.WithStack(ErrInvalidMethodName)
	}
	cont, err := i.ctx.Contract(ContAddr)
	if err != nil {
		return nil, err
	}
	ecc := i.currentContractContext(Cc, cont)
	rMethod, err := methodByName(cont, MethodName)
	if err != nil {
		return nil, err
	}
	in, err := contractInputsConv(ecc, rMethod, MethodName, Args)
	if err != nil {
		return nil, err
	}
	outs := rMethod.Call(in)
	result := []interface{}{}
	for _, out := range outs {
		if out.Type() == errType {
			if !out.IsNil() {
				return nil, out.Interface().(error)
			}
		} else {
			result = append(result, out.Interface())
		}
	}
	return result, nil
}

// currentContractContext keeps the caller context for self-calls and switches
// the acting account to the calling contract for cross-contract calls
func (i *Interactor) currentContractContext(Cc *ContractContext, cont Contract) *ContractContext {
	if Cc.cont == cont.Address() {
		return Cc
	}
	ecc := i.ctx.ContractContext(cont, Cc.cont)
	ecc.Exec = i.Exec
	ecc.emit = i.AddEvent
	return ecc
}

func methodByName(cont Contract, MethodName string) (reflect.Value, error) {
	front := cont.Front()
	rv := reflect.ValueOf(front)
	key := rv.Type().String() + "." + MethodName
	if idx, err := methodCache.Get(key); err == nil {
		return rv.Method(idx.(int)), nil
	}
	m, has := rv.Type().MethodByName(MethodName)
	if !has {
		return reflect.Value{}, errors.Wrap(ErrInvalidMethodName, MethodName)
	}
	methodCache.Set(key, m.Index)
	return rv.Method(m.Index), nil
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func contractInputsConv(ecc *ContractContext, rMethod reflect.Value, MethodName string, Args []interface{}) ([]reflect.Value, error) {
	mt := rMethod.Type()
	if mt.NumIn() < 1 || mt.In(0) != ccType {
		return nil, errors.Wrap(ErrInvalidMethodName, MethodName)
	}
	if mt.NumIn() != len(Args)+1 {
		return nil, errors.Wrapf(ErrInvalidInputCount, "%v expect %v got %v", MethodName, mt.NumIn()-1, len(Args))
	}
	in := make([]reflect.Value, 0, mt.NumIn())
	in = append(in, reflect.ValueOf(ecc))
	for idx, arg := range Args {
		if arg == nil {
			return nil, errors.Wrapf(ErrInvalidInputType, "%v argument %v is nil", MethodName, idx)
		}
		pt := mt.In(idx + 1)
		av := reflect.ValueOf(arg)
		switch {
		case av.Type().AssignableTo(pt):
		case av.Type() == bigIntType && pt == amountType:
			av = reflect.ValueOf(&amount.Amount{Int: arg.(*big.Int)})
		case av.Type() == amountType && pt == bigIntType:
			av = reflect.ValueOf(arg.(*amount.Amount).Int)
		case isNumericKind(av.Kind()) && isNumericKind(pt.Kind()) && av.Type().ConvertibleTo(pt):
			av = av.Convert(pt)
		default:
			return nil, errors.Wrapf(ErrInvalidInputType, "%v argument %v is %v not %v", MethodName, idx, av.Type(), pt)
		}
		in = append(in, av)
	}
	return in, nil
}
