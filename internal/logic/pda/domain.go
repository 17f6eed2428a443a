package pda

import (
	"fmt"
	"hash"

	"github.com/minio/sha256-simd"

	"sol-calculator/internal/consts"
	"sol-calculator/internal/pkg/types"
)

// Domain 描述一套地址派生规则。派生算法中用到的后缀、长度限制、哈希与曲线判定都集中在这里，
// 便于在测试中替换（例如构造永远 on-curve 的判定来覆盖 bump 耗尽路径）。
type Domain struct {
	Marker        string
	MaxSeeds      int
	MaxSeedLength int
	NewHash       func() hash.Hash
	IsOnCurve     func(types.Pubkey) bool
}

// SolanaDomain 与 Solana runtime 的 create_program_address / find_program_address 一致
var SolanaDomain = Domain{
	Marker:        consts.PDAMarker,
	MaxSeeds:      consts.MaxSeeds,
	MaxSeedLength: consts.MaxSeedLength,
	NewHash:       sha256.New,
	IsOnCurve:     IsOnCurve,
}

func (d *Domain) validateSeeds(seeds [][]byte) error {
	if len(seeds) > d.MaxSeeds {
		return fmt.Errorf("got %d seeds, max %d: %w", len(seeds), d.MaxSeeds, ErrSeedConstraintViolation)
	}
	for i, seed := range seeds {
		if len(seed) > d.MaxSeedLength {
			return fmt.Errorf("seed[%d] is %d bytes, max %d: %w", i, len(seed), d.MaxSeedLength, ErrSeedConstraintViolation)
		}
	}
	return nil
}

func (d *Domain) validateProgramID(programID []byte) (types.Pubkey, error) {
	if len(programID) != types.PubkeyLength {
		return types.Pubkey{}, fmt.Errorf("program id is %d bytes, want %d: %w",
			len(programID), types.PubkeyLength, ErrInvalidProgramId)
	}
	return types.Pubkey(programID), nil
}

// hashCandidate 计算 hash(seeds... || extra || programId || marker)，extra 为可选的 bump 字节
func (d *Domain) hashCandidate(seeds [][]byte, extra []byte, programID types.Pubkey) (types.Pubkey, error) {
	h := d.NewHash()
	for _, seed := range seeds {
		_, _ = h.Write(seed)
	}
	_, _ = h.Write(extra)
	_, _ = h.Write(programID[:])
	_, _ = h.Write([]byte(d.Marker))

	sum := h.Sum(nil)
	if len(sum) != types.PubkeyLength {
		return types.Pubkey{}, fmt.Errorf("hash output is %d bytes, want %d", len(sum), types.PubkeyLength)
	}
	return types.Hash(sum).Pubkey(), nil
}
