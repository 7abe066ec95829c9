package conformance

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	gomega "github.com/onsi/gomega"

	"github.com/meverselabs/tokensuite/common/amount"
)

func (s *suite) describeApprovalExtension() {
	if !s.src.TestExtension {
		return
	}
	Describe("IncreaseApproval", func() {
		It("test_increase_from_zero", func() {
			am := s.f.units(3)
			rec := s.send(s.first(), "IncreaseApproval", s.second(), am)
			ShouldEmit(rec, ApprovalEvent(s.first(), s.second(), am))
			s.expectAllowance(s.first(), s.second(), am)
		})

		It("test_increase_adds_to_allowance", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			rec := s.send(s.first(), "IncreaseApproval", s.second(), s.f.units(3))
			ShouldEmit(rec, ApprovalEvent(s.first(), s.second(), s.f.units(8)))
			s.expectAllowance(s.first(), s.second(), s.f.units(8))
		})

		It("test_increase_self_spender", func() {
			s.send(s.first(), "IncreaseApproval", s.first(), s.f.units(2))
			s.send(s.first(), "IncreaseApproval", s.first(), s.f.units(2))
			s.expectAllowance(s.first(), s.first(), s.f.units(4))
		})

		It("test_increase_past_maximum_rejected", func() {
			max := amount.MaxUint256.Clone()
			s.send(s.first(), "Approve", s.second(), max)
			one := &amount.Amount{Int: big.NewInt(1)}
			_, err := s.f.token.Send(s.first(), "IncreaseApproval", s.second(), one)
			s.shouldRevert(err)
			s.expectAllowance(s.first(), s.second(), max)
		})
	})

	Describe("DecreaseApproval", func() {
		It("test_decrease_subtracts", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			rec := s.send(s.first(), "DecreaseApproval", s.second(), s.f.units(2))
			ShouldEmit(rec, ApprovalEvent(s.first(), s.second(), s.f.units(3)))
			s.expectAllowance(s.first(), s.second(), s.f.units(3))
		})

		It("test_decrease_clamps_to_zero", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(3))
			rec := s.send(s.first(), "DecreaseApproval", s.second(), s.f.units(100))
			ShouldEmit(rec, ApprovalEvent(s.first(), s.second(), s.zero()))
			s.expectAllowance(s.first(), s.second(), s.zero())
		})

		It("test_decrease_on_empty_allowance", func() {
			rec := s.send(s.first(), "DecreaseApproval", s.second(), s.f.units(10))
			ShouldEmit(rec, ApprovalEvent(s.first(), s.second(), s.zero()))
			s.expectAllowance(s.first(), s.second(), s.zero())
		})

		It("test_decrease_self_spender", func() {
			s.send(s.first(), "Approve", s.first(), s.f.units(5))
			s.send(s.first(), "DecreaseApproval", s.first(), s.f.units(2))
			s.expectAllowance(s.first(), s.first(), s.f.units(3))
		})

		It("test_simulated_decrease_never_fails", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(1))
			gomega.Expect(s.simulate(s.first(), "DecreaseApproval", s.second(), s.f.units(50))).To(gomega.BeTrue())
			s.expectAllowance(s.first(), s.second(), s.f.units(1))
		})
	})
}
