package pda

import (
	"fmt"

	"sol-calculator/internal/consts"
	"sol-calculator/internal/pkg/types"
	"sol-calculator/internal/tools"
)

const (
	metadataSeed = "metadata"
	editionSeed  = "edition"
)

// FindAssociatedTokenAddress 计算 owner 在指定 token program 下持有 mint 的 ATA。
// 种子顺序：[owner, tokenProgram, mint]，程序为 Associated Token Program。
// tokenProgram 只能是 Token v1 或 Token-2022。
func FindAssociatedTokenAddress(owner, mint, tokenProgram types.Pubkey) (DerivedAddress, error) {
	if !tools.IsSPLTokenProgram(tokenProgram) {
		return DerivedAddress{}, fmt.Errorf("token program %s: %w", tokenProgram, ErrInvalidProgramId)
	}
	return FindProgramAddress(
		[][]byte{owner[:], tokenProgram[:], mint[:]},
		consts.AssociatedTokenProgram,
	)
}

// FindMetadataPDA 计算 Token Metadata 程序下 ["metadata", programId, mint, extra...] 的地址
func FindMetadataPDA(mint types.Pubkey, extra ...[]byte) (DerivedAddress, error) {
	seeds := make([][]byte, 0, 3+len(extra))
	seeds = append(seeds, []byte(metadataSeed), consts.TokenMetaProgram[:], mint[:])
	seeds = append(seeds, extra...)
	return FindProgramAddress(seeds, consts.TokenMetaProgram)
}

// FindMetadataAddress NFT 元数据账户
func FindMetadataAddress(mint types.Pubkey) (DerivedAddress, error) {
	return FindMetadataPDA(mint)
}

// FindMasterEditionAddress NFT master edition 账户
func FindMasterEditionAddress(mint types.Pubkey) (DerivedAddress, error) {
	return FindMetadataPDA(mint, []byte(editionSeed))
}
