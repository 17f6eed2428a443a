package ixbuilder

import (
	"github.com/blocto/solana-go-sdk/common"
	sdktypes "github.com/blocto/solana-go-sdk/types"

	"sol-calculator/internal/logic/codec"
	"sol-calculator/internal/pkg/types"
)

// NewCalculatorInstruction 构造发往计算器程序的指令。
// 账户结构：
//  0. 计算器状态账户（可写，通常为 PDA）
func NewCalculatorInstruction(programID, calculator types.Pubkey, ix codec.CalculatorInstruction) sdktypes.Instruction {
	return sdktypes.Instruction{
		ProgramID: common.PublicKey(programID),
		Accounts: []sdktypes.AccountMeta{
			{PubKey: common.PublicKey(calculator), IsSigner: false, IsWritable: true},
		},
		Data: ix.Encode(),
	}
}

// DecodeCalculatorInstruction 从 SDK 指令中还原指令数据
func DecodeCalculatorInstruction(ix sdktypes.Instruction) (codec.CalculatorInstruction, error) {
	return codec.Decode(ix.Data)
}
