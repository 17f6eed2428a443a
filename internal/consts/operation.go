package consts

// 计算器程序支持的操作码，与链上程序的 u32 operation 字段一一对应
const (
	OpReset      = iota // 0
	OpAdd               // 1
	OpSubtract          // 2
	OpMultiplyBy        // 3
)

var OperationNames = []string{
	"Reset",      // 0
	"Add",        // 1
	"Subtract",   // 2
	"MultiplyBy", // 3
}

func OperationName(op uint32) string {
	if op < uint32(len(OperationNames)) {
		return OperationNames[op]
	}
	return "Unknown"
}
