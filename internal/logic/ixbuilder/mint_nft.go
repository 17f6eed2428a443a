package ixbuilder

import (
	"fmt"

	"github.com/blocto/solana-go-sdk/common"
	sdktypes "github.com/blocto/solana-go-sdk/types"

	"sol-calculator/internal/consts"
	"sol-calculator/internal/logic/codec"
	"sol-calculator/internal/logic/pda"
	"sol-calculator/internal/pkg/types"
)

// MintNftAccounts mint_nft 指令所需账户，Metadata/MasterEdition/TokenAccount 均可由 mint 与 owner 派生
type MintNftAccounts struct {
	Metadata      types.Pubkey
	MasterEdition types.Pubkey
	Mint          types.Pubkey
	TokenAccount  types.Pubkey
	MintAuthority types.Pubkey
}

// ResolveMintNftAccounts 在客户端侧派生 mint_nft 需要的全部地址，链上程序负责实际创建账户
func ResolveMintNftAccounts(mint, owner types.Pubkey) (MintNftAccounts, error) {
	tokenAccount, err := pda.FindAssociatedTokenAddress(owner, mint, consts.TokenProgram)
	if err != nil {
		return MintNftAccounts{}, fmt.Errorf("derive token account: %w", err)
	}
	metadata, err := pda.FindMetadataAddress(mint)
	if err != nil {
		return MintNftAccounts{}, fmt.Errorf("derive metadata: %w", err)
	}
	edition, err := pda.FindMasterEditionAddress(mint)
	if err != nil {
		return MintNftAccounts{}, fmt.Errorf("derive master edition: %w", err)
	}
	return MintNftAccounts{
		Metadata:      metadata.Address,
		MasterEdition: edition.Address,
		Mint:          mint,
		TokenAccount:  tokenAccount.Address,
		MintAuthority: owner,
	}, nil
}

// NewMintNftInstruction 构造 mint_nft 指令。
// 账户结构：
//  0. Metadata（可写）
//  1. Master Edition（可写）
//  2. Mint（可写，签名）
//  3. Token Account（可写）
//  4. Mint Authority（可写，签名）
//  5. Rent Sysvar
//  6. System Program
//  7. Token Program
//  8. Associated Token Program
//  9. Token Metadata Program
func NewMintNftInstruction(programID types.Pubkey, accounts MintNftAccounts, args codec.MintNftArgs) (sdktypes.Instruction, error) {
	data, err := codec.EncodeMintNft(args)
	if err != nil {
		return sdktypes.Instruction{}, err
	}
	return sdktypes.Instruction{
		ProgramID: common.PublicKey(programID),
		Accounts: []sdktypes.AccountMeta{
			{PubKey: common.PublicKey(accounts.Metadata), IsSigner: false, IsWritable: true},
			{PubKey: common.PublicKey(accounts.MasterEdition), IsSigner: false, IsWritable: true},
			{PubKey: common.PublicKey(accounts.Mint), IsSigner: true, IsWritable: true},
			{PubKey: common.PublicKey(accounts.TokenAccount), IsSigner: false, IsWritable: true},
			{PubKey: common.PublicKey(accounts.MintAuthority), IsSigner: true, IsWritable: true},
			{PubKey: common.PublicKey(consts.SysvarRent), IsSigner: false, IsWritable: false},
			{PubKey: common.PublicKey(consts.SystemProgram), IsSigner: false, IsWritable: false},
			{PubKey: common.PublicKey(consts.TokenProgram), IsSigner: false, IsWritable: false},
			{PubKey: common.PublicKey(consts.AssociatedTokenProgram), IsSigner: false, IsWritable: false},
			{PubKey: common.PublicKey(consts.TokenMetaProgram), IsSigner: false, IsWritable: false},
		},
		Data: data,
	}, nil
}
