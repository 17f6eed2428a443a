package consts

import "runtime"

// 地址派生（PDA）相关常量，与 Solana runtime 的 create_program_address 保持一致
const (
	// PDAMarker 为派生时追加在 programId 之后的域分隔后缀
	PDAMarker = "ProgramDerivedAddress"

	// MaxSeeds 单次派生允许的种子数量上限（含 bump 之前的用户种子）
	MaxSeeds = 16
	// MaxSeedLength 单个种子的最大字节长度
	MaxSeedLength = 32
	// MaxBump bump 从 255 开始向下搜索
	MaxBump = 255
)

// 指令布局相关常量
const (
	// CalculatorInstructionSize = u32 operation + u32 operand
	CalculatorInstructionSize = 8
	// LamportsBufferSize = i64 金额
	LamportsBufferSize = 8
	// AnchorDiscriminatorSize Anchor 指令前缀长度
	AnchorDiscriminatorSize = 8
)

// CpuCount 表示逻辑 CPU 核心数，用于控制并发任务调度上限
var CpuCount = runtime.NumCPU()
