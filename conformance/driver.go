package conformance

import (
	"github.com/pkg/errors"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/core/types"
)

// RevertSignal is prefixed to every error surfaced by the context driver so
// that a rejected call can be told apart from a broken one.
const RevertSignal = "execution reverted"

// Token is the contract under test. The suite drives it as a black box with
// two access modes per operation: Call reports the outcome an equivalent
// commit call would have without mutating state, Send commits the mutation
// and yields a receipt with the emitted events.
type Token interface {
	Call(from common.Address, method string, args ...interface{}) ([]interface{}, error)
	Send(from common.Address, method string, args ...interface{}) (*types.Receipt, error)
}

type contextToken struct {
	ctx  *types.Context
	addr common.Address
}

// NewContextToken returns a Token driving the contract at the address of the context
func NewContextToken(ctx *types.Context, addr common.Address) Token {
	return &contextToken{
		ctx:  ctx,
		addr: addr,
	}
}

func (t *contextToken) exec(intr *types.Interactor, from common.Address, method string, args []interface{}) ([]interface{}, error) {
	cont, err := t.ctx.Contract(t.addr)
	if err != nil {
		return nil, err
	}
	cc := t.ctx.ContractContext(cont, from)
	intr.Bind(cc)
	return cc.Exec(cc, t.addr, method, args)
}

func (t *contextToken) Call(from common.Address, method string, args ...interface{}) ([]interface{}, error) {
	sn := t.ctx.Snapshot()
	defer t.ctx.Revert(sn)
	is, err := t.exec(types.NewInteractor(t.ctx), from, method, args)
	if err != nil {
		return nil, errors.WithMessage(err, RevertSignal)
	}
	return is, nil
}

func (t *contextToken) Send(from common.Address, method string, args ...interface{}) (*types.Receipt, error) {
	sn := t.ctx.Snapshot()
	intr := types.NewInteractor(t.ctx)
	if _, err := t.exec(intr, from, method, args); err != nil {
		t.ctx.Revert(sn)
		return nil, errors.WithMessage(err, RevertSignal)
	}
	t.ctx.Commit(sn)
	return intr.Receipt(), nil
}
