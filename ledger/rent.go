package ledger

import (
	"encoding/binary"
	"fmt"
)

// Defaults mirror the mainnet rent schedule.
const (
	defaultLamportsPerByteYear = 3480
	defaultExemptionYears      = 2

	// accountStorageOverhead is charged on top of the data size for the
	// account metadata the host itself stores.
	accountStorageOverhead = 128

	rentSysvarSize = 16
)

// Rent computes the minimum balance an account of a given size must hold
// to persist without being reclaimed.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionYears      uint64
}

func DefaultRent() Rent {
	return Rent{
		LamportsPerByteYear: defaultLamportsPerByteYear,
		ExemptionYears:      defaultExemptionYears,
	}
}

// MinimumBalance is a pure function of the data size.
func (r Rent) MinimumBalance(space uint64) uint64 {
	return (accountStorageOverhead + space) * r.LamportsPerByteYear * r.ExemptionYears
}

// NewRentSysvarAccount packs the schedule into the rent sysvar account so
// programs read it like any other account.
func NewRentSysvarAccount(r Rent) *Account {
	data := make([]byte, rentSysvarSize)
	binary.LittleEndian.PutUint64(data[0:8], r.LamportsPerByteYear)
	binary.LittleEndian.PutUint64(data[8:16], r.ExemptionYears)
	return &Account{Key: SysvarRentID, Owner: SystemProgramID, Data: data}
}

// RentFromAccount decodes the schedule out of the rent sysvar handle.
func RentFromAccount(info AccountInfo) (Rent, error) {
	if info.Key() != SysvarRentID {
		return Rent{}, fmt.Errorf("account %s is not the rent sysvar", info.Key())
	}
	data := info.Account.Data
	if len(data) < rentSysvarSize {
		return Rent{}, fmt.Errorf("rent sysvar data is %d bytes, want %d", len(data), rentSysvarSize)
	}
	return Rent{
		LamportsPerByteYear: binary.LittleEndian.Uint64(data[0:8]),
		ExemptionYears:      binary.LittleEndian.Uint64(data[8:16]),
	}, nil
}
