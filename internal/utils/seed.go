package utils

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

const (
	seedPrefixHex    = "hex:"
	seedPrefixBase58 = "base58:"
	seedPrefixUTF8   = "utf8:"
)

// ParseSeed 将配置中的种子字符串转换为原始字节：
// - "hex:0a0b"      → 十六进制
// - "base58:<addr>" → base58（常用于把某个地址作为种子）
// - "utf8:text" 或无前缀 → 原样 utf8 字节
func ParseSeed(s string) ([]byte, error) {
	switch {
	case strings.HasPrefix(s, seedPrefixHex):
		b, err := hex.DecodeString(s[len(seedPrefixHex):])
		if err != nil {
			return nil, fmt.Errorf("invalid hex seed %q: %w", s, err)
		}
		return b, nil
	case strings.HasPrefix(s, seedPrefixBase58):
		b, err := base58.Decode(s[len(seedPrefixBase58):])
		if err != nil {
			return nil, fmt.Errorf("invalid base58 seed %q: %w", s, err)
		}
		return b, nil
	case strings.HasPrefix(s, seedPrefixUTF8):
		return []byte(s[len(seedPrefixUTF8):]), nil
	default:
		return []byte(s), nil
	}
}

func ParseSeeds(strs []string) ([][]byte, error) {
	seeds := make([][]byte, 0, len(strs))
	for i, s := range strs {
		b, err := ParseSeed(s)
		if err != nil {
			return nil, fmt.Errorf("seed[%d]: %w", i, err)
		}
		seeds = append(seeds, b)
	}
	return seeds, nil
}
