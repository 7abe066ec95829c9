package types

import "github.com/pkg/errors"

// types errors
var (
	ErrNotExistContract  = errors.New("not exist contract")
	ErrInvalidMethodName = errors.New("invalid method name")
	ErrInvalidInputCount = errors.New("invalid input count")
	ErrInvalidInputType  = errors.New("invalid input type")
	ErrInvalidResultType = errors.New("invalid result type")
	ErrExistAddress      = errors.New("exist address")
)
