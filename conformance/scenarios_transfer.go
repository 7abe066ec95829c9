package conformance

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	gomega "github.com/onsi/gomega"

	"github.com/meverselabs/tokensuite/common/amount"
)

func (s *suite) describeTransfer() {
	Describe("Transfer", func() {
		It("test_transfer_zero_tokens", func() {
			b1 := s.getBalance(s.first())
			b2 := s.getBalance(s.second())
			rec := s.send(s.first(), "Transfer", s.second(), s.zero())
			ShouldEmit(rec, TransferEvent(s.first(), s.second(), s.zero()))
			s.expectBalance(s.first(), b1)
			s.expectBalance(s.second(), b2)
		})

		It("test_transfer_zero_tokens_to_self", func() {
			b1 := s.getBalance(s.first())
			rec := s.send(s.first(), "Transfer", s.first(), s.zero())
			ShouldEmit(rec, TransferEvent(s.first(), s.first(), s.zero()))
			s.expectBalance(s.first(), b1)
		})

		It("test_transfer_moves_balance", func() {
			s.mustCredit(s.first(), s.f.units(100))
			b1 := s.getBalance(s.first())
			b2 := s.getBalance(s.second())
			supply := s.getSupply()

			am := s.f.units(30)
			rec := s.send(s.first(), "Transfer", s.second(), am)
			ShouldEmit(rec, TransferEvent(s.first(), s.second(), am))
			s.expectBalance(s.first(), b1.Sub(am))
			s.expectBalance(s.second(), b2.Add(am))
			s.expectSupply(supply)
		})

		It("test_transfer_full_balance", func() {
			s.mustCredit(s.first(), s.f.units(12))
			bal := s.getBalance(s.first())
			b2 := s.getBalance(s.second())
			s.send(s.first(), "Transfer", s.second(), bal)
			s.expectBalance(s.first(), s.zero())
			s.expectBalance(s.second(), b2.Add(bal))
		})

		It("test_transfer_to_self_keeps_balance", func() {
			s.mustCredit(s.first(), s.f.units(50))
			bal := s.getBalance(s.first())
			am := s.f.units(20)
			rec := s.send(s.first(), "Transfer", s.first(), am)
			ShouldEmit(rec, TransferEvent(s.first(), s.first(), am))
			s.expectBalance(s.first(), bal)
		})

		It("test_transfer_exceeding_balance_rejected", func() {
			bal := s.getBalance(s.first())
			over := bal.Add(&amount.Amount{Int: big.NewInt(1)})
			_, err := s.f.token.Send(s.first(), "Transfer", s.second(), over)
			s.shouldRevert(err)
			s.expectBalance(s.first(), bal)
		})

		It("test_transfer_to_self_exceeding_balance_rejected", func() {
			bal := s.getBalance(s.first())
			over := bal.Add(&amount.Amount{Int: big.NewInt(1)})
			_, err := s.f.token.Send(s.first(), "Transfer", s.first(), over)
			s.shouldRevert(err)
			s.expectBalance(s.first(), bal)
		})

		It("test_simulate_then_commit", func() {
			s.mustCredit(s.first(), s.f.units(10))
			b1 := s.getBalance(s.first())
			b2 := s.getBalance(s.second())

			am := s.f.units(4)
			gomega.Expect(s.simulate(s.first(), "Transfer", s.second(), am)).To(gomega.BeTrue())
			s.expectBalance(s.first(), b1)
			s.expectBalance(s.second(), b2)

			s.send(s.first(), "Transfer", s.second(), am)
			s.expectBalance(s.first(), b1.Sub(am))
			s.expectBalance(s.second(), b2.Add(am))
		})

		It("test_supply_conserved_across_transfers", func() {
			s.mustCredit(s.first(), s.f.units(30))
			supply := s.getSupply()
			sum := s.zero()
			for _, acc := range s.cfg.Accounts[:MinAccounts] {
				sum = sum.Add(s.getBalance(acc))
			}

			s.send(s.first(), "Transfer", s.second(), s.f.units(10))
			s.send(s.second(), "Transfer", s.third(), s.f.units(5))
			s.send(s.third(), "Transfer", s.first(), s.f.units(1))

			s.expectSupply(supply)
			after := s.zero()
			for _, acc := range s.cfg.Accounts[:MinAccounts] {
				after = after.Add(s.getBalance(acc))
			}
			gomega.Expect(after.Cmp(sum.Int)).To(gomega.Equal(0))
		})

		It("test_transfer_negative_amount_rejected", func() {
			neg := &amount.Amount{Int: big.NewInt(-1)}
			_, err := s.f.token.Send(s.first(), "Transfer", s.second(), neg)
			s.shouldRevert(err)
		})
	})
}
