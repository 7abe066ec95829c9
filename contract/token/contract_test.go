package token_test

import (
	"testing"

	"github.com/meverselabs/tokensuite/common"
	"github.com/meverselabs/tokensuite/common/amount"
	"github.com/meverselabs/tokensuite/conformance"
	"github.com/meverselabs/tokensuite/contract/token"
	"github.com/meverselabs/tokensuite/core/types"
)

func deployToken(t *testing.T, owner common.Address, supply map[common.Address]*amount.Amount) conformance.Token {
	ctx := types.NewContext()
	addr, err := ctx.DeployContract(owner, &token.TokenContract{}, &token.TokenContractConstruction{
		Name:             "Test",
		Symbol:           "TST",
		InitialSupplyMap: supply,
	})
	if err != nil {
		t.Fatal(err)
	}
	return conformance.NewContextToken(ctx, addr)
}

func balanceOf(t *testing.T, tok conformance.Token, owner common.Address, addr common.Address) *amount.Amount {
	is, err := tok.Call(owner, "BalanceOf", addr)
	if err != nil {
		t.Fatal(err)
	}
	return is[0].(*amount.Amount)
}

func Test_Token_Premint(t *testing.T) {
	accs := conformance.TestAccounts("token-test", 2)
	tok := deployToken(t, accs[0], map[common.Address]*amount.Amount{
		accs[1]: amount.NewAmount(100, 0),
	})
	if !balanceOf(t, tok, accs[0], accs[1]).Equal(amount.NewAmount(100, 0)) {
		t.Fatal("premint balance missing")
	}
	is, err := tok.Call(accs[0], "TotalSupply")
	if err != nil {
		t.Fatal(err)
	}
	if !is[0].(*amount.Amount).Equal(amount.NewAmount(100, 0)) {
		t.Fatal("premint supply missing")
	}
}

func Test_Token_MintGating(t *testing.T) {
	accs := conformance.TestAccounts("token-test", 3)
	tok := deployToken(t, accs[0], nil)

	if _, err := tok.Send(accs[1], "Mint", accs[1], amount.NewAmount(1, 0)); err == nil {
		t.Fatal("only the master or a minter may mint")
	}

	if _, err := tok.Send(accs[0], "SetMinter", accs[1], true); err != nil {
		t.Fatal(err)
	}
	rec, err := tok.Send(accs[1], "Mint", accs[2], amount.NewAmount(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if err := conformance.CheckEvent(rec, conformance.TransferEvent(common.ZeroAddr, accs[2], amount.NewAmount(5, 0))); err != nil {
		t.Fatal(err)
	}

	if _, err := tok.Send(accs[0], "SetMinter", accs[1], false); err != nil {
		t.Fatal(err)
	}
	if _, err := tok.Send(accs[1], "Mint", accs[2], amount.NewAmount(1, 0)); err == nil {
		t.Fatal("revoked minter must not mint")
	}
}

func Test_Token_SetMinterGating(t *testing.T) {
	accs := conformance.TestAccounts("token-test", 3)
	tok := deployToken(t, accs[0], nil)
	if _, err := tok.Send(accs[1], "SetMinter", accs[2], true); err == nil {
		t.Fatal("only the master may manage minters")
	}
	if _, err := tok.Send(accs[0], "SetMinter", accs[1], false); err == nil {
		t.Fatal("revoking a non-minter must fail")
	}
}

func Test_Token_Burn(t *testing.T) {
	accs := conformance.TestAccounts("token-test", 2)
	tok := deployToken(t, accs[0], map[common.Address]*amount.Amount{
		accs[1]: amount.NewAmount(10, 0),
	})

	rec, err := tok.Send(accs[1], "Burn", amount.NewAmount(4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if err := conformance.CheckEvent(rec, conformance.TransferEvent(accs[1], common.ZeroAddr, amount.NewAmount(4, 0))); err != nil {
		t.Fatal(err)
	}
	if !balanceOf(t, tok, accs[0], accs[1]).Equal(amount.NewAmount(6, 0)) {
		t.Fatal("burn must reduce the balance")
	}
	is, err := tok.Call(accs[0], "TotalSupply")
	if err != nil {
		t.Fatal(err)
	}
	if !is[0].(*amount.Amount).Equal(amount.NewAmount(6, 0)) {
		t.Fatal("burn must reduce the supply")
	}

	if _, err := tok.Send(accs[1], "Burn", amount.NewAmount(100, 0)); err == nil {
		t.Fatal("burning past the balance must fail")
	}
}

func Test_Token_FailedSendRollsBack(t *testing.T) {
	accs := conformance.TestAccounts("token-test", 3)
	tok := deployToken(t, accs[0], map[common.Address]*amount.Amount{
		accs[1]: amount.NewAmount(10, 0),
	})
	if _, err := tok.Send(accs[1], "Transfer", accs[2], amount.NewAmount(100, 0)); err == nil {
		t.Fatal("overspend must fail")
	}
	if !balanceOf(t, tok, accs[0], accs[1]).Equal(amount.NewAmount(10, 0)) {
		t.Fatal("failed send must leave no trace")
	}
}
