package conformance

import (
	. "github.com/onsi/ginkgo/v2"
	gomega "github.com/onsi/gomega"
)

func (s *suite) describeApprove() {
	Describe("Approve", func() {
		It("test_simulated_approve_always_succeeds", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			// zero, decrease, rewrite, increase and revoke are all plain overwrites
			for _, n := range []int64{0, 2, 5, 8, 0} {
				gomega.Expect(s.simulate(s.first(), "Approve", s.second(), s.f.units(n))).To(gomega.BeTrue())
			}
			s.expectAllowance(s.first(), s.second(), s.f.units(5))
		})

		It("test_approve_overwrites_value", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			s.expectAllowance(s.first(), s.second(), s.f.units(5))
			s.send(s.first(), "Approve", s.second(), s.f.units(2))
			s.expectAllowance(s.first(), s.second(), s.f.units(2))
		})

		It("test_approve_emits_event", func() {
			am := s.f.units(13)
			rec := s.send(s.first(), "Approve", s.second(), am)
			ShouldEmit(rec, ApprovalEvent(s.first(), s.second(), am))
		})

		It("test_reapprove_same_value_emits_event", func() {
			am := s.f.units(4)
			s.send(s.first(), "Approve", s.second(), am)
			rec := s.send(s.first(), "Approve", s.second(), am)
			ShouldEmit(rec, ApprovalEvent(s.first(), s.second(), am))
		})

		It("test_approve_zero_twice_emits_both", func() {
			rec1 := s.send(s.first(), "Approve", s.second(), s.zero())
			ShouldEmit(rec1, ApprovalEvent(s.first(), s.second(), s.zero()))
			rec2 := s.send(s.first(), "Approve", s.second(), s.zero())
			ShouldEmit(rec2, ApprovalEvent(s.first(), s.second(), s.zero()))
		})

		It("test_approve_self_emits_event", func() {
			am := s.f.units(6)
			rec := s.send(s.first(), "Approve", s.first(), am)
			ShouldEmit(rec, ApprovalEvent(s.first(), s.first(), am))
			s.expectAllowance(s.first(), s.first(), am)
		})

		It("test_revoke_approval", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			rec := s.send(s.first(), "Approve", s.second(), s.zero())
			ShouldEmit(rec, ApprovalEvent(s.first(), s.second(), s.zero()))
			s.expectAllowance(s.first(), s.second(), s.zero())
		})

		It("test_approve_without_balance", func() {
			// allowances are promises, holding nothing approves anything
			am := s.f.units(1000)
			s.send(s.third(), "Approve", s.second(), am)
			s.expectAllowance(s.third(), s.second(), am)
		})
	})
}
