package conformance_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	gomega "github.com/onsi/gomega"
)

func TestTokenConformance(t *testing.T) {
	gomega.RegisterFailHandler(Fail)
	RunSpecs(t, "Token Conformance Suite")
}
