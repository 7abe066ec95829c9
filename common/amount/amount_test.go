package amount

import (
	"math/big"
	"testing"
)

func Test_Amount(t *testing.T) {
	a := COIN.DivC(1000)
	if a.String() != "0.001" {
		t.Fatal("COIN/1000", a.String())
	}
	b := COIN.MulC(10000)
	if b.String() != "10000" {
		t.Fatal("COIN*10000", b.String())
	}
	if a.Add(b).String() != "10000.001" {
		t.Fatal("add", a.Add(b).String())
	}
	if a.Sub(b).String() != "-9999.999" {
		t.Fatal("sub", a.Sub(b).String())
	}
	if a.MulC(90000).String() != "90" {
		t.Fatal("mulc", a.MulC(90000).String())
	}
	c, err := ParseAmount("10000.00121454")
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != "10000.00121454" {
		t.Fatal("parse", c.String())
	}
}

func Test_Amount_Compare(t *testing.T) {
	a := NewAmount(5, 0)
	b := NewAmount(2, 0)
	if !b.Less(a) {
		t.Fatal("2 < 5")
	}
	if !a.Sub(a.Sub(b)).Equal(b) {
		t.Fatal("5 - (5-2) == 2")
	}
	if !NewAmount(0, 0).IsZero() {
		t.Fatal("zero")
	}
	if !a.IsPlus() || a.IsMinus() {
		t.Fatal("sign of 5")
	}
	n := b.Sub(a)
	if !n.IsMinus() || n.IsPlus() {
		t.Fatal("sign of -3")
	}
}

func Test_Amount_Bytes(t *testing.T) {
	a := NewAmount(123, 450000000000000000)
	b := NewAmountFromBytes(a.Bytes())
	if !a.Equal(b) {
		t.Fatal("bytes roundtrip", a.String(), b.String())
	}
}

func Test_Amount_Parse_Invalid(t *testing.T) {
	if _, err := ParseAmount("1.2.3"); err == nil {
		t.Fatal("1.2.3 should not parse")
	}
	if _, err := ParseAmount("abc"); err == nil {
		t.Fatal("abc should not parse")
	}
}

func Test_MaxUint256(t *testing.T) {
	one := &Amount{Int: big.NewInt(1)}
	over := MaxUint256.Add(one)
	if over.Int.BitLen() != 257 {
		t.Fatal("max+1 should need 257 bits")
	}
}
