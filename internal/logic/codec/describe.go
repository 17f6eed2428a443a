package codec

import "fmt"

// Describe 将操作码映射为可读文本，未知操作码返回 ErrUnknownOperation
func Describe(op Operation, operand uint32) (string, error) {
	switch op {
	case OperationReset:
		return "reset the example", nil
	case OperationAdd:
		return fmt.Sprintf("add: %d", operand), nil
	case OperationSubtract:
		return fmt.Sprintf("subtract: %d", operand), nil
	case OperationMultiplyBy:
		return fmt.Sprintf("multiply by: %d", operand), nil
	default:
		return "", fmt.Errorf("operation=%d: %w", uint32(op), ErrUnknownOperation)
	}
}
