package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sol-calculator/internal/consts"
	"sol-calculator/internal/logic/pda"
	"sol-calculator/internal/pkg/types"
)

var testProgramID = types.PubkeyFromBase58("BPFLoaderUpgradeab1e11111111111111111111111")

func TestAddressCache_Memoizes(t *testing.T) {
	ac, err := NewAddressCache(16, time.Minute)
	require.NoError(t, err)

	seeds := [][]byte{[]byte("calculator")}
	expected, err := pda.FindProgramAddress(seeds, testProgramID)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		got, err := ac.FindProgramAddress(seeds, testProgramID)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
	assert.Equal(t, int64(1), ac.Derives())

	// 不同 program 不共享缓存
	_, err = ac.FindProgramAddress(seeds, consts.TokenProgram)
	require.NoError(t, err)
	assert.Equal(t, int64(2), ac.Derives())
}

func TestAddressCache_KeyDistinguishesSeedBoundaries(t *testing.T) {
	ac, err := NewAddressCache(16, time.Minute)
	require.NoError(t, err)

	a, err := ac.FindProgramAddress([][]byte{[]byte("ab"), []byte("c")}, testProgramID)
	require.NoError(t, err)
	b, err := ac.FindProgramAddress([][]byte{[]byte("a"), []byte("bc")}, testProgramID)
	require.NoError(t, err)

	// 拼接后字节相同，因此地址相同，但两次都应实际派生
	assert.Equal(t, a, b)
	assert.Equal(t, int64(2), ac.Derives())
}

func TestAddressCache_ErrorsNotCached(t *testing.T) {
	ac, err := NewAddressCache(16, time.Minute)
	require.NoError(t, err)

	_, err = ac.FindProgramAddress([][]byte{make([]byte, 33)}, testProgramID)
	assert.ErrorIs(t, err, pda.ErrSeedConstraintViolation)
	assert.Equal(t, int64(0), ac.Derives())
}

func TestAddressCache_Concurrent(t *testing.T) {
	ac, err := NewAddressCache(64, time.Minute)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seeds := [][]byte{{byte(i % 4)}}
			got, err := ac.FindProgramAddress(seeds, testProgramID)
			assert.NoError(t, err)
			expected, _ := pda.FindProgramAddress(seeds, testProgramID)
			assert.Equal(t, expected, got)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, ac.Derives(), int64(4))
}
