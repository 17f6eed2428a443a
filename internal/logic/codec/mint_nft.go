package codec

import (
	"bytes"
	"fmt"

	"github.com/minio/sha256-simd"
	"github.com/near/borsh-go"

	"sol-calculator/internal/consts"
)

const MintNftInstructionName = "mint_nft"

// MintNftArgs mint_nft 指令参数，按 borsh 顺序序列化（string = u32 长度 + 字节）
type MintNftArgs struct {
	Title  string
	Symbol string
	Uri    string
}

// AnchorDiscriminator 计算 Anchor 指令前缀：sha256("global:<name>")[:8]
func AnchorDiscriminator(name string) [consts.AnchorDiscriminatorSize]byte {
	sum := sha256.Sum256([]byte("global:" + name))
	var d [consts.AnchorDiscriminatorSize]byte
	copy(d[:], sum[:consts.AnchorDiscriminatorSize])
	return d
}

// EncodeMintNft 生成 mint_nft 指令数据：discriminator + borsh(args)
func EncodeMintNft(args MintNftArgs) ([]byte, error) {
	body, err := borsh.Serialize(args)
	if err != nil {
		return nil, fmt.Errorf("EncodeMintNft: borsh serialize: %w", err)
	}
	d := AnchorDiscriminator(MintNftInstructionName)
	data := make([]byte, 0, len(d)+len(body))
	data = append(data, d[:]...)
	data = append(data, body...)
	return data, nil
}

func DecodeMintNft(data []byte) (args MintNftArgs, err error) {
	if len(data) < consts.AnchorDiscriminatorSize {
		return args, fmt.Errorf("mint_nft: got %d bytes: %w", len(data), ErrMalformedBuffer)
	}
	d := AnchorDiscriminator(MintNftInstructionName)
	if !bytes.Equal(data[:consts.AnchorDiscriminatorSize], d[:]) {
		return args, fmt.Errorf("mint_nft: discriminator mismatch: %w", ErrUnknownOperation)
	}

	// borsh-go 对截断数据可能 panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mint_nft: borsh deserialize panic: %v: %w", r, ErrMalformedBuffer)
		}
	}()
	if err = borsh.Deserialize(&args, data[consts.AnchorDiscriminatorSize:]); err != nil {
		return args, fmt.Errorf("mint_nft: %v: %w", err, ErrMalformedBuffer)
	}
	return args, nil
}
