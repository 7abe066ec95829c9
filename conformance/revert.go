package conformance

import (
	"strings"

	"github.com/onsi/gomega"
	"github.com/pkg/errors"
)

// DefaultRevertSignals are the error substrings classified as an intentional
// rejection by the contract under test
var DefaultRevertSignals = []string{
	"execution reverted",
	"invalid opcode",
}

// CheckRevert classifies the outcome of a call that must be rejected. It
// returns nil when the error carries one of the signals, an error when the
// call succeeded or failed for an unforeseen reason.
func CheckRevert(err error, signals ...string) error {
	if len(signals) == 0 {
		signals = DefaultRevertSignals
	}
	if err == nil {
		return errors.New("expected rejection not received")
	}
	for _, signal := range signals {
		if strings.Contains(err.Error(), signal) {
			return nil
		}
	}
	return errors.Errorf("rejected for an unexpected reason: %v", err)
}

// ShouldRevert asserts CheckRevert inside a running spec
func ShouldRevert(err error, signals ...string) {
	gomega.ExpectWithOffset(1, CheckRevert(err, signals...)).To(gomega.Succeed())
}
