package ledger

import (
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// PubkeyLength is the byte size of every account identifier on the ledger.
const PubkeyLength = 32

// Pubkey identifies an account. The text form is base58, same as the
// on-chain convention.
type Pubkey [PubkeyLength]byte

// Well-known ids.
var (
	// SystemProgramID owns fresh accounts and implements the
	// create-account primitive.
	SystemProgramID = MustPubkeyFromBase58("11111111111111111111111111111111")

	// SysvarRentID is the account carrying the rent schedule.
	SysvarRentID = MustPubkeyFromBase58("SysvarRent111111111111111111111111111111111")
)

func PubkeyFromBase58(s string) (Pubkey, error) {
	var key Pubkey
	decoded, err := base58.Decode(s)
	if err != nil {
		return key, fmt.Errorf("decoding pubkey %q: %w", s, err)
	}
	if len(decoded) != PubkeyLength {
		return key, fmt.Errorf("pubkey %q decodes to %d bytes, want %d", s, len(decoded), PubkeyLength)
	}
	copy(key[:], decoded)
	return key, nil
}

func MustPubkeyFromBase58(s string) Pubkey {
	key, err := PubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return key
}

func PubkeyFromBytes(b []byte) (Pubkey, error) {
	var key Pubkey
	if len(b) != PubkeyLength {
		return key, fmt.Errorf("pubkey must be %d bytes, got %d", PubkeyLength, len(b))
	}
	copy(key[:], b)
	return key, nil
}

// PubkeyFromSeed derives a deterministic key from a human-readable seed.
// The simulator uses seeds instead of real keypairs.
func PubkeyFromSeed(seed string) Pubkey {
	return sha256.Sum256([]byte(seed))
}

// ResolvePubkey accepts either a 32-byte base58 key or a seed name.
func ResolvePubkey(s string) Pubkey {
	if key, err := PubkeyFromBase58(s); err == nil {
		return key
	}
	return PubkeyFromSeed(s)
}

func (k Pubkey) String() string {
	return base58.Encode(k[:])
}

func (k Pubkey) Bytes() []byte {
	return k[:]
}

func (k Pubkey) IsZero() bool {
	return k == Pubkey{}
}
