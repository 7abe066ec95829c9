package conformance

import (
	. "github.com/onsi/ginkgo/v2"
	gomega "github.com/onsi/gomega"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
	"github.com/meverselabs/tokensuite/core/types"
)

// RunSuite registers the conformance scenarios for the contract produced by
// the configuration's factory. Call it from a top-level var declaration and
// drive it with ginkgo's RunSpecs. Every scenario runs against a fresh
// instance, nothing leaks between them.
func RunSuite(name string, cfg *Config) bool {
	s := &suite{src: cfg}
	return Describe(name, func() {
		BeforeEach(s.setUp)
		AfterEach(s.tearDown)
		s.describeTotalSupply()
		s.describeBalanceOf()
		s.describeAllowance()
		s.describeMetadata()
		s.describeApprove()
		s.describeTransfer()
		s.describeTransferFrom()
		s.describeApprovalExtension()
	})
}

type suite struct {
	src *Config
	cfg *Config
	f   *fixture
}

func (s *suite) setUp() {
	cfg, err := s.src.Resolve()
	gomega.Expect(err).To(gomega.Succeed())
	s.cfg = cfg
	f, err := newFixture(cfg)
	gomega.Expect(err).To(gomega.Succeed())
	s.f = f
}

func (s *suite) tearDown() {
	if s.f != nil {
		gomega.Expect(s.f.close()).To(gomega.Succeed())
		s.f = nil
	}
}

func (s *suite) owner() common.Address {
	return s.cfg.Accounts[0]
}

func (s *suite) first() common.Address {
	return s.cfg.Accounts[1]
}

func (s *suite) second() common.Address {
	return s.cfg.Accounts[2]
}

func (s *suite) third() common.Address {
	return s.cfg.Accounts[3]
}

func (s *suite) zero() *amount.Amount {
	return amount.NewAmount(0, 0)
}

// send commits the operation and asserts it was accepted
func (s *suite) send(from common.Address, method string, args ...interface{}) *types.Receipt {
	rec, err := s.f.token.Send(from, method, args...)
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	return rec
}

// simulate reports the boolean outcome a commit would have without mutating
// anything
func (s *suite) simulate(from common.Address, method string, args ...interface{}) bool {
	is, err := s.f.token.Call(from, method, args...)
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	gomega.ExpectWithOffset(1, is).To(gomega.HaveLen(1))
	ok, isBool := is[0].(bool)
	gomega.ExpectWithOffset(1, isBool).To(gomega.BeTrue())
	return ok
}

func (s *suite) mustCredit(to common.Address, am *amount.Amount) {
	gomega.ExpectWithOffset(1, s.f.credit(to, am)).To(gomega.Succeed())
}

// supplyDelta is the total supply change one credit of the amount causes
func (s *suite) supplyDelta(am *amount.Amount) *amount.Amount {
	if s.cfg.creditAddsSupply() {
		return am
	}
	return s.zero()
}

func (s *suite) shouldRevert(err error) {
	gomega.ExpectWithOffset(1, CheckRevert(err, s.cfg.RevertSignals...)).To(gomega.Succeed())
}

func (s *suite) expectSupply(want *amount.Amount) {
	total, err := s.f.totalSupply()
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	gomega.ExpectWithOffset(1, total.Cmp(want.Int)).To(gomega.Equal(0), "total supply %v want %v", total.String(), want.String())
}

func (s *suite) expectBalance(addr common.Address, want *amount.Amount) {
	bal, err := s.f.balanceOf(addr)
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	gomega.ExpectWithOffset(1, bal.Cmp(want.Int)).To(gomega.Equal(0), "balance of %v is %v want %v", addr.String(), bal.String(), want.String())
}

func (s *suite) expectAllowance(owner common.Address, spender common.Address, want *amount.Amount) {
	al, err := s.f.allowance(owner, spender)
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	gomega.ExpectWithOffset(1, al.Cmp(want.Int)).To(gomega.Equal(0), "allowance %v->%v is %v want %v", owner.String(), spender.String(), al.String(), want.String())
}

func (s *suite) getBalance(addr common.Address) *amount.Amount {
	bal, err := s.f.balanceOf(addr)
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	return bal
}

func (s *suite) getSupply() *amount.Amount {
	total, err := s.f.totalSupply()
	gomega.ExpectWithOffset(1, err).To(gomega.Succeed())
	return total
}
