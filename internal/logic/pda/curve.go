package pda

import (
	"filippo.io/edwards25519"

	"sol-calculator/internal/pkg/types"
)

// IsOnCurve 判断 32 字节是否可解压为 ed25519 曲线上的点（即可能是某个私钥对应的公钥）
func IsOnCurve(p types.Pubkey) bool {
	_, err := new(edwards25519.Point).SetBytes(p[:])
	return err == nil
}
