package conformance

import (
	. "github.com/onsi/ginkgo/v2"
	gomega "github.com/onsi/gomega"
)

func (s *suite) describeTotalSupply() {
	Describe("TotalSupply", func() {
		It("test_initial_supply", func() {
			s.expectSupply(s.cfg.InitialSupply)
		})

		It("test_credit_changes_supply", func() {
			am := s.f.units(40)
			s.mustCredit(s.first(), am)
			s.expectSupply(s.cfg.InitialSupply.Add(s.supplyDelta(am)))
		})

		It("test_credit_accumulates_across_accounts", func() {
			a1 := s.f.units(10)
			a2 := s.f.units(25)
			s.mustCredit(s.first(), a1)
			s.mustCredit(s.second(), a2)
			s.mustCredit(s.third(), a1)
			want := s.cfg.InitialSupply.
				Add(s.supplyDelta(a1)).
				Add(s.supplyDelta(a2)).
				Add(s.supplyDelta(a1))
			s.expectSupply(want)
		})
	})
}

func (s *suite) describeBalanceOf() {
	Describe("BalanceOf", func() {
		It("test_initial_balances", func() {
			for _, acc := range s.cfg.Accounts[:MinAccounts] {
				s.expectBalance(acc, s.cfg.initialBalance(acc))
			}
		})

		It("test_credit_increases_balance", func() {
			am := s.f.units(7)
			base := s.getBalance(s.first())
			s.mustCredit(s.first(), am)
			s.expectBalance(s.first(), base.Add(am))
		})

		It("test_credit_tracks_each_account", func() {
			for i, acc := range s.cfg.Accounts[1:MinAccounts] {
				am := s.f.units(int64(i + 1))
				base := s.getBalance(acc)
				s.mustCredit(acc, am)
				s.expectBalance(acc, base.Add(am))
			}
		})
	})
}

func (s *suite) describeAllowance() {
	Describe("Allowance", func() {
		It("test_initial_allowances", func() {
			for _, al := range s.cfg.InitialAllowances {
				s.expectAllowance(al.Owner, al.Spender, al.Amount)
			}
		})

		It("test_unconfigured_pairs_are_zero", func() {
			accs := s.cfg.Accounts[:MinAccounts]
			for _, owner := range accs {
				for _, spender := range accs {
					s.expectAllowance(owner, spender, s.cfg.initialAllowance(owner, spender))
				}
			}
		})

		It("test_pair_is_directional", func() {
			am := s.f.units(11)
			s.send(s.first(), "Approve", s.second(), am)
			s.expectAllowance(s.first(), s.second(), am)
			s.expectAllowance(s.second(), s.first(), s.cfg.initialAllowance(s.second(), s.first()))
		})

		It("test_reflects_latest_approval", func() {
			s.send(s.first(), "Approve", s.second(), s.f.units(5))
			s.send(s.first(), "Approve", s.second(), s.f.units(2))
			s.expectAllowance(s.first(), s.second(), s.f.units(2))
		})

		It("test_self_approval_pair", func() {
			am := s.f.units(9)
			s.send(s.owner(), "Approve", s.owner(), am)
			s.expectAllowance(s.owner(), s.owner(), am)
		})
	})
}

func (s *suite) describeMetadata() {
	if s.src.ExpectedName == "" && s.src.ExpectedSymbol == "" && s.src.ExpectedDecimals == nil {
		return
	}
	Describe("Metadata", func() {
		if s.src.ExpectedName != "" {
			It("test_name", func() {
				name, err := s.f.queryString("Name")
				gomega.Expect(err).To(gomega.Succeed())
				gomega.Expect(name).To(gomega.Equal(s.cfg.ExpectedName))
			})
		}
		if s.src.ExpectedSymbol != "" {
			It("test_symbol", func() {
				symbol, err := s.f.queryString("Symbol")
				gomega.Expect(err).To(gomega.Succeed())
				gomega.Expect(symbol).To(gomega.Equal(s.cfg.ExpectedSymbol))
			})
		}
		if s.src.ExpectedDecimals != nil {
			It("test_decimals", func() {
				d, err := s.f.queryAmount("Decimals")
				gomega.Expect(err).To(gomega.Succeed())
				gomega.Expect(d.Cmp(s.cfg.ExpectedDecimals)).To(gomega.Equal(0))
			})
		}
	})
}
