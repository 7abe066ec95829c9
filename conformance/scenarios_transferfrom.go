package conformance

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	gomega "github.com/onsi/gomega"

	"github.com/meverselabs/tokensuite/common/amount"
)

func (s *suite) describeTransferFrom() {
	Describe("TransferFrom", func() {
		It("test_transferfrom_zero_without_allowance", func() {
			b1 := s.getBalance(s.first())
			b3 := s.getBalance(s.third())
			rec := s.send(s.second(), "TransferFrom", s.first(), s.third(), s.zero())
			ShouldEmit(rec, TransferEvent(s.first(), s.third(), s.zero()))
			s.expectBalance(s.first(), b1)
			s.expectBalance(s.third(), b3)
		})

		It("test_transferfrom_debits_allowance_exactly", func() {
			s.mustCredit(s.first(), s.f.units(2))
			s.send(s.first(), "Approve", s.second(), s.f.units(3))
			b1 := s.getBalance(s.first())
			b3 := s.getBalance(s.third())
			supply := s.getSupply()

			am := s.f.units(2)
			rec := s.send(s.second(), "TransferFrom", s.first(), s.third(), am)
			ShouldEmit(rec, TransferEvent(s.first(), s.third(), am))
			s.expectBalance(s.first(), b1.Sub(am))
			s.expectBalance(s.third(), b3.Add(am))
			s.expectAllowance(s.first(), s.second(), s.f.units(1))
			s.expectSupply(supply)
		})

		It("test_transferfrom_leaves_other_spenders_alone", func() {
			s.mustCredit(s.first(), s.f.units(5))
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			s.send(s.first(), "Approve", s.third(), s.f.units(7))

			s.send(s.second(), "TransferFrom", s.first(), s.second(), s.f.units(2))
			s.expectAllowance(s.first(), s.second(), s.f.units(3))
			s.expectAllowance(s.first(), s.third(), s.f.units(7))
		})

		It("test_transferfrom_without_allowance_rejected", func() {
			s.mustCredit(s.first(), s.f.units(10))
			one := &amount.Amount{Int: big.NewInt(1)}
			_, err := s.f.token.Send(s.second(), "TransferFrom", s.first(), s.third(), one)
			s.shouldRevert(err)
		})

		It("test_transferfrom_exceeding_allowance_rejected", func() {
			s.mustCredit(s.first(), s.f.units(10))
			s.send(s.first(), "Approve", s.second(), s.f.units(2))
			_, err := s.f.token.Send(s.second(), "TransferFrom", s.first(), s.third(), s.f.units(5))
			s.shouldRevert(err)
			s.expectAllowance(s.first(), s.second(), s.f.units(2))
		})

		It("test_transferfrom_exceeding_balance_rejected", func() {
			bal := s.getBalance(s.first())
			over := bal.Add(s.f.units(1))
			s.send(s.first(), "Approve", s.second(), over.Add(over))
			_, err := s.f.token.Send(s.second(), "TransferFrom", s.first(), s.third(), over)
			s.shouldRevert(err)
			s.expectBalance(s.first(), bal)
		})

		It("test_transferfrom_to_source_consumes_allowance", func() {
			s.mustCredit(s.first(), s.f.units(5))
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			bal := s.getBalance(s.first())

			am := s.f.units(3)
			rec := s.send(s.second(), "TransferFrom", s.first(), s.first(), am)
			ShouldEmit(rec, TransferEvent(s.first(), s.first(), am))
			s.expectBalance(s.first(), bal)
			s.expectAllowance(s.first(), s.second(), s.f.units(2))
		})

		It("test_transferfrom_with_owner_as_spender", func() {
			s.mustCredit(s.first(), s.f.units(4))
			s.send(s.first(), "Approve", s.first(), s.f.units(4))
			b2 := s.getBalance(s.second())

			am := s.f.units(2)
			s.send(s.first(), "TransferFrom", s.first(), s.second(), am)
			s.expectBalance(s.second(), b2.Add(am))
			s.expectAllowance(s.first(), s.first(), s.f.units(2))
		})

		It("test_transferfrom_simulate_then_commit", func() {
			s.mustCredit(s.first(), s.f.units(6))
			s.send(s.first(), "Approve", s.second(), s.f.units(6))
			b3 := s.getBalance(s.third())

			am := s.f.units(3)
			gomega.Expect(s.simulate(s.second(), "TransferFrom", s.first(), s.third(), am)).To(gomega.BeTrue())
			s.expectBalance(s.third(), b3)
			s.expectAllowance(s.first(), s.second(), s.f.units(6))

			s.send(s.second(), "TransferFrom", s.first(), s.third(), am)
			s.expectBalance(s.third(), b3.Add(am))
			s.expectAllowance(s.first(), s.second(), s.f.units(3))
		})

		It("test_transferfrom_negative_amount_rejected", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			neg := &amount.Amount{Int: big.NewInt(-1)}
			_, err := s.f.token.Send(s.second(), "TransferFrom", s.first(), s.third(), neg)
			s.shouldRevert(err)
		})
	})
}
