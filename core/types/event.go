package types

import (
	"github.com/meverselabs/tokensuite/common"
)

// standard token event names
const (
	EventTransfer = "Transfer"
	EventApproval = "Approval"
)

// Event is a named record emitted by a contract during a committed call
type Event struct {
	Contract common.Address
	Name     string
	Args     []interface{}
}

// NewEvent returns an Event of the contract
func NewEvent(cont common.Address, name string, args ...interface{}) *Event {
	return &Event{
		Contract: cont,
		Name:     name,
		Args:     args,
	}
}

// Receipt carries the events emitted by a committed call in emission order
type Receipt struct {
	Events []*Event
}

// EventsOf returns the events matching the name in emission order
func (r *Receipt) EventsOf(name string) []*Event {
	list := []*Event{}
	for _, ev := range r.Events {
		if ev.Name == name {
			list = append(list, ev)
		}
	}
	return list
}
