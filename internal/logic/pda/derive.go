package pda

import (
	"fmt"

	"sol-calculator/internal/consts"
	"sol-calculator/internal/pkg/types"
)

// DerivedAddress 派生结果：off-curve 地址及使其 off-curve 的 bump
type DerivedAddress struct {
	Address types.Pubkey
	Bump    uint8
}

// SeedSet 一组有序种子及其所属程序。种子顺序有语义，交换顺序会得到不同地址。
type SeedSet struct {
	Seeds     [][]byte
	ProgramID types.Pubkey
}

func (s SeedSet) Validate() error {
	return SolanaDomain.validateSeeds(s.Seeds)
}

func (s SeedSet) Derive() (DerivedAddress, error) {
	return SolanaDomain.FindProgramAddress(s.Seeds, s.ProgramID[:])
}

// CreateProgramAddress 不做 bump 搜索，直接对给定种子（通常已包含 bump）求地址
func (d *Domain) CreateProgramAddress(seeds [][]byte, programID []byte) (types.Pubkey, error) {
	if err := d.validateSeeds(seeds); err != nil {
		return types.Pubkey{}, err
	}
	pid, err := d.validateProgramID(programID)
	if err != nil {
		return types.Pubkey{}, err
	}

	addr, err := d.hashCandidate(seeds, nil, pid)
	if err != nil {
		return types.Pubkey{}, err
	}
	if d.IsOnCurve(addr) {
		return types.Pubkey{}, ErrOnCurve
	}
	return addr, nil
}

// FindProgramAddress 从 bump=255 开始向下搜索，返回第一个 off-curve 的地址。
// 循环最多 256 次；全部 on-curve 时返回 ErrDerivationExhausted。
func (d *Domain) FindProgramAddress(seeds [][]byte, programID []byte) (DerivedAddress, error) {
	if err := d.validateSeeds(seeds); err != nil {
		return DerivedAddress{}, err
	}
	pid, err := d.validateProgramID(programID)
	if err != nil {
		return DerivedAddress{}, err
	}

	bumpSeed := make([]byte, 1)
	for bump := consts.MaxBump; bump >= 0; bump-- {
		bumpSeed[0] = uint8(bump)
		addr, err := d.hashCandidate(seeds, bumpSeed, pid)
		if err != nil {
			return DerivedAddress{}, err
		}
		if !d.IsOnCurve(addr) {
			return DerivedAddress{Address: addr, Bump: uint8(bump)}, nil
		}
	}
	return DerivedAddress{}, fmt.Errorf("program=%s: %w", pid, ErrDerivationExhausted)
}

func CreateProgramAddress(seeds [][]byte, programID types.Pubkey) (types.Pubkey, error) {
	return SolanaDomain.CreateProgramAddress(seeds, programID[:])
}

func FindProgramAddress(seeds [][]byte, programID types.Pubkey) (DerivedAddress, error) {
	return SolanaDomain.FindProgramAddress(seeds, programID[:])
}

// FindProgramAddressBytes 供持有原始字节 programId 的调用方使用，长度不为 32 时返回 ErrInvalidProgramId
func FindProgramAddressBytes(seeds [][]byte, programID []byte) (DerivedAddress, error) {
	return SolanaDomain.FindProgramAddress(seeds, programID)
}
