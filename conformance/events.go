package conformance

import (
	"reflect"

	"github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
	"github.com/meverselabs/tokensuite/core/types"
)

// TransferEvent returns the expected Transfer event record of a balance move.
// The emitting contract is not part of the expectation, the suite treats the
// instance under test as a black box.
func TransferEvent(from common.Address, to common.Address, am *amount.Amount) *types.Event {
	return &types.Event{
		Name: types.EventTransfer,
		Args: []interface{}{from, to, am},
	}
}

// ApprovalEvent returns the expected Approval event record of an allowance
// overwrite
func ApprovalEvent(owner common.Address, spender common.Address, am *amount.Amount) *types.Event {
	return &types.Event{
		Name: types.EventApproval,
		Args: []interface{}{owner, spender, am},
	}
}

// CheckEvent asserts the receipt carries exactly one event with the expected
// name and that its arguments match exactly. Amount arguments compare by
// numeric value, not by representation.
func CheckEvent(r *types.Receipt, expected *types.Event) error {
	if r == nil {
		return errors.New("no receipt")
	}
	evs := r.EventsOf(expected.Name)
	if len(evs) != 1 {
		return errors.Errorf("expected exactly one %v event got %v", expected.Name, len(evs))
	}
	ev := evs[0]
	if len(ev.Args) != len(expected.Args) {
		return errors.Errorf("%v event has %v arguments want %v", expected.Name, len(ev.Args), len(expected.Args))
	}
	for idx, want := range expected.Args {
		if err := matchEventArg(ev.Args[idx], want); err != nil {
			return errors.WithMessagef(err, "%v event argument %v", expected.Name, idx)
		}
	}
	return nil
}

func matchEventArg(got interface{}, want interface{}) error {
	switch wv := want.(type) {
	case *amount.Amount:
		gv, err := toAmount(got)
		if err != nil {
			return err
		}
		if gv.Cmp(wv.Int) != 0 {
			return errors.Errorf("amount %v want %v", gv.String(), wv.String())
		}
	case common.Address:
		gv, ok := got.(common.Address)
		if !ok {
			return errors.Errorf("%T is not an address", got)
		}
		if gv != wv {
			return errors.Errorf("address %v want %v", gv.String(), wv.String())
		}
	default:
		if !reflect.DeepEqual(got, want) {
			return errors.Errorf("%v want %v", got, want)
		}
	}
	return nil
}

// ShouldEmit asserts CheckEvent inside a running spec
func ShouldEmit(r *types.Receipt, expected *types.Event) {
	gomega.ExpectWithOffset(1, CheckEvent(r, expected)).To(gomega.Succeed())
}
