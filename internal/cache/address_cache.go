package cache

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/zeromicro/go-zero/core/collection"

	"sol-calculator/internal/logic/pda"
	"sol-calculator/internal/pkg/types"
)

// AddressCache 调用方侧的 PDA 派生结果缓存。
// 派生是纯函数，相同 (seeds, programId) 的结果永远相同，缓存只用于减少重复计算。
type AddressCache struct {
	cache   *collection.Cache
	derives atomic.Int64 // 实际执行派生的次数
}

func NewAddressCache(limit int, expire time.Duration) (*AddressCache, error) {
	if limit <= 0 {
		limit = 1024
	}
	c, err := collection.NewCache(expire, collection.WithLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("create address cache: %w", err)
	}
	return &AddressCache{cache: c}, nil
}

// FindProgramAddress 与 pda.FindProgramAddress 语义一致，命中缓存时直接返回。错误不会被缓存。
func (ac *AddressCache) FindProgramAddress(seeds [][]byte, programID types.Pubkey) (pda.DerivedAddress, error) {
	// 先校验，保证缓存 key 只会由合法种子构成
	set := pda.SeedSet{Seeds: seeds, ProgramID: programID}
	if err := set.Validate(); err != nil {
		return pda.DerivedAddress{}, err
	}

	val, err := ac.cache.Take(cacheKey(set), func() (any, error) {
		ac.derives.Add(1)
		derived, err := set.Derive()
		if err != nil {
			return nil, err
		}
		return derived, nil
	})
	if err != nil {
		return pda.DerivedAddress{}, err
	}
	return val.(pda.DerivedAddress), nil
}

// Derives 返回实际执行派生的次数（未命中缓存的次数）
func (ac *AddressCache) Derives() int64 {
	return ac.derives.Load()
}

// cacheKey = programId || (len(seed) || seed)...，种子长度不超过 32，单字节长度前缀即可消除歧义
func cacheKey(set pda.SeedSet) string {
	var sb strings.Builder
	sb.Grow(types.PubkeyLength + len(set.Seeds)*33)
	sb.Write(set.ProgramID[:])
	for _, seed := range set.Seeds {
		sb.WriteByte(byte(len(seed)))
		sb.Write(seed)
	}
	return sb.String()
}
