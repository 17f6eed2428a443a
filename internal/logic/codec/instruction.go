package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"sol-calculator/internal/consts"
)

// Operation 计算器程序的 u32 操作码
type Operation uint32

const (
	OperationReset      Operation = consts.OpReset
	OperationAdd        Operation = consts.OpAdd
	OperationSubtract   Operation = consts.OpSubtract
	OperationMultiplyBy Operation = consts.OpMultiplyBy
)

func (o Operation) String() string {
	return consts.OperationName(uint32(o))
}

// Valid 仅判断是否属于已知操作码；编码本身不做该校验
func (o Operation) Valid() bool {
	return o <= OperationMultiplyBy
}

// 指令数据布局（小端序，无填充）：
//
//	offset 0: u32 operation
//	offset 4: u32 operand
const (
	operationOffset = 0
	operandOffset   = 4
)

// CalculatorInstruction 发往计算器程序的指令数据，值类型，编码后不可变
type CalculatorInstruction struct {
	Operation Operation
	Operand   uint32
}

// Encode 将指令编码为固定 8 字节
func (ix CalculatorInstruction) Encode() []byte {
	data := make([]byte, consts.CalculatorInstructionSize)
	binary.LittleEndian.PutUint32(data[operationOffset:], uint32(ix.Operation))
	binary.LittleEndian.PutUint32(data[operandOffset:], ix.Operand)
	return data
}

// Describe 返回指令的可读描述
func (ix CalculatorInstruction) Describe() (string, error) {
	return Describe(ix.Operation, ix.Operand)
}

// Encode 编码 (operation, operand)。与链上程序一致，不校验 operation 是否在枚举内。
func Encode(op Operation, operand uint32) []byte {
	return CalculatorInstruction{Operation: op, Operand: operand}.Encode()
}

// EncodeValues 供持有更宽整型的调用方使用，超出 u32 范围返回 ErrOutOfRange
func EncodeValues(op, operand int64) ([]byte, error) {
	if op < 0 || op > math.MaxUint32 {
		return nil, fmt.Errorf("operation=%d: %w", op, ErrOutOfRange)
	}
	if operand < 0 || operand > math.MaxUint32 {
		return nil, fmt.Errorf("operand=%d: %w", operand, ErrOutOfRange)
	}
	return Encode(Operation(op), uint32(operand)), nil
}

// Decode 按相同布局解码，长度必须正好为 8 字节
func Decode(data []byte) (CalculatorInstruction, error) {
	if len(data) != consts.CalculatorInstructionSize {
		return CalculatorInstruction{}, fmt.Errorf("got %d bytes, want %d: %w",
			len(data), consts.CalculatorInstructionSize, ErrMalformedBuffer)
	}
	return CalculatorInstruction{
		Operation: Operation(binary.LittleEndian.Uint32(data[operationOffset:])),
		Operand:   binary.LittleEndian.Uint32(data[operandOffset:]),
	}, nil
}
