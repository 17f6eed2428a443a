package codec

import (
	"math"
	"math/rand"
	"testing"

	"github.com/near/borsh-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_ByteOrder(t *testing.T) {
	data := Encode(OperationAdd, 5)
	assert.Equal(t, []byte{0x01, 0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00}, data)

	data = Encode(OperationMultiplyBy, 0x04030201)
	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0x00, 0x01, 0x02, 0x03, 0x04}, data)
}

func TestEncode_FixedSize(t *testing.T) {
	for _, operand := range []uint32{0, 1, 255, 256, 65535, 1 << 24, math.MaxUint32} {
		assert.Len(t, Encode(OperationSubtract, operand), 8, "operand=%d", operand)
	}
	// 未知操作码同样按原样编码
	assert.Len(t, Encode(Operation(99), 1), 8)
}

func TestEncode_MatchesBorshLayout(t *testing.T) {
	type borshInstruction struct {
		Operation uint32
		Operand   uint32
	}
	expected, err := borsh.Serialize(borshInstruction{Operation: 2, Operand: 123456})
	require.NoError(t, err)
	assert.Equal(t, expected, Encode(OperationSubtract, 123456))
}

func TestDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ops := []Operation{OperationReset, OperationAdd, OperationSubtract, OperationMultiplyBy}
	edge := []uint32{0, 1, math.MaxUint32, math.MaxUint32 - 1}

	for _, op := range ops {
		for _, v := range edge {
			ix, err := Decode(Encode(op, v))
			require.NoError(t, err)
			assert.Equal(t, CalculatorInstruction{Operation: op, Operand: v}, ix)
		}
		for i := 0; i < 1000; i++ {
			v := rng.Uint32()
			ix, err := Decode(Encode(op, v))
			require.NoError(t, err)
			assert.Equal(t, op, ix.Operation)
			assert.Equal(t, v, ix.Operand)
		}
	}
}

func TestDecode_Malformed(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x01, 0x02, 0x03},
		make([]byte, 7),
		make([]byte, 9),
	}
	for _, c := range cases {
		_, err := Decode(c)
		assert.ErrorIs(t, err, ErrMalformedBuffer, "len=%d", len(c))
	}
}

func TestEncodeValues(t *testing.T) {
	data, err := EncodeValues(1, 5)
	require.NoError(t, err)
	assert.Equal(t, Encode(OperationAdd, 5), data)

	data, err = EncodeValues(math.MaxUint32, math.MaxUint32)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, data)

	tests := []struct {
		name        string
		op, operand int64
	}{
		{"negative operation", -1, 0},
		{"operation overflow", math.MaxUint32 + 1, 0},
		{"negative operand", 1, -5},
		{"operand overflow", 1, 1 << 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeValues(tt.op, tt.operand)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "Reset", OperationReset.String())
	assert.Equal(t, "MultiplyBy", OperationMultiplyBy.String())
	assert.Equal(t, "Unknown", Operation(4).String())
	assert.True(t, OperationSubtract.Valid())
	assert.False(t, Operation(4).Valid())
}
