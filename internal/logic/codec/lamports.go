package codec

import (
	"encoding/binary"
	"fmt"

	"sol-calculator/internal/consts"
)

// EncodeLamports 将金额编码为 8 字节小端 i64
func EncodeLamports(amount int64) []byte {
	data := make([]byte, consts.LamportsBufferSize)
	binary.LittleEndian.PutUint64(data, uint64(amount))
	return data
}

func DecodeLamports(data []byte) (int64, error) {
	if len(data) != consts.LamportsBufferSize {
		return 0, fmt.Errorf("lamports: got %d bytes, want %d: %w",
			len(data), consts.LamportsBufferSize, ErrMalformedBuffer)
	}
	return int64(binary.LittleEndian.Uint64(data)), nil
}
