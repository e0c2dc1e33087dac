package board

import (
	"fmt"
	"unicode/utf8"

	"tokenboard/ledger"
)

// Wire layout, little-endian, no padding:
// byte 0 = variant tag, bytes 1..33 = token id, remainder = UTF-8 url
// (no length prefix or terminator, consumes the rest of the buffer).
const createBoardTag = 0

// Instruction is the decoded form of a payload. Exactly one variant exists
// today; unknown tags are rejected at decode time.
type Instruction interface {
	isInstruction()
}

// CreateBoard provisions a new board bound to Token and URL.
type CreateBoard struct {
	Token ledger.Pubkey
	URL   string
}

func (CreateBoard) isInstruction() {}

// Encode builds the wire payload for a CreateBoard call.
func (in CreateBoard) Encode() []byte {
	data := make([]byte, 0, 1+ledger.PubkeyLength+len(in.URL))
	data = append(data, createBoardTag)
	data = append(data, in.Token[:]...)
	data = append(data, in.URL...)
	return data
}

// DecodeInstruction parses a raw payload. Every failure mode maps to
// ErrMalformedInstruction; no index ever passes verified bounds.
func DecodeInstruction(payload []byte) (Instruction, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedInstruction)
	}
	tag, rest := payload[0], payload[1:]
	switch tag {
	case createBoardTag:
		if len(rest) < ledger.PubkeyLength {
			return nil, fmt.Errorf("%w: %d bytes after tag, want at least %d",
				ErrMalformedInstruction, len(rest), ledger.PubkeyLength)
		}
		token, err := ledger.PubkeyFromBytes(rest[:ledger.PubkeyLength])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInstruction, err)
		}
		raw := rest[ledger.PubkeyLength:]
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("%w: url is not valid UTF-8", ErrMalformedInstruction)
		}
		return CreateBoard{Token: token, URL: string(raw)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown tag %d", ErrMalformedInstruction, tag)
	}
}
