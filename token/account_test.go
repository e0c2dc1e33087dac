package token

import (
	"errors"
	"testing"

	"tokenboard/ledger"
)

func TestHoldingRoundTrip(t *testing.T) {
	holding := Holding{
		Mint:   ledger.PubkeyFromSeed("usdx"),
		Owner:  ledger.PubkeyFromSeed("alice"),
		Amount: 250,
	}
	data := PackHolding(holding)
	if len(data) != AccountSize {
		t.Fatalf("expected %d bytes, got %d", AccountSize, len(data))
	}

	decoded, err := UnpackHolding(data)
	if err != nil {
		t.Fatalf("unpack failed: %v", err)
	}
	if decoded != holding {
		t.Errorf("round trip mismatch:\nexpected %+v\ngot      %+v", holding, decoded)
	}
}

func TestUnpackHoldingRejectsWrongSize(t *testing.T) {
	cases := []struct {
		name string
		size int
	}{
		{"empty", 0},
		{"truncated", AccountSize - 1},
		{"oversized", AccountSize + 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := UnpackHolding(make([]byte, c.size))
			if !errors.Is(err, ErrInvalidAccountData) {
				t.Errorf("expected ErrInvalidAccountData, got %v", err)
			}
		})
	}
}
