package config

import (
	"time"

	"sol-calculator/internal/pkg/logger"
)

type LogConfig struct {
	Format   string `json:"format,default=console"` // 日志格式，支持 "console" 或 "json"
	LogDir   string `json:"log_dir,optional"`       // 日志目录，为空时输出到 stdout
	Level    string `json:"level,default=info"`     // 日志级别：debug / info / warn / error
	Compress bool   `json:"compress,optional"`      // 是否压缩旧日志文件
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// CacheConfig 调用方侧的派生结果缓存（核心派生函数本身不缓存）
type CacheConfig struct {
	Limit   int `json:"limit,default=1024"`    // 最大缓存条目数
	ExpireS int `json:"expire_s,default=600"` // 过期时间（秒）
}

func (c *CacheConfig) Expire() time.Duration {
	if c.ExpireS <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.ExpireS) * time.Second
}

// InstructionRequest 一条待编码的计算器指令。使用 int64 以便对越界输入给出 OutOfRange 错误。
type InstructionRequest struct {
	Operation int64 `json:"operation"`
	Operand   int64 `json:"operand,optional"`
}

// DerivationRequest 一组待派生的种子
// 种子格式："hex:0a0b"、"base58:<pubkey>"、"utf8:text"，无前缀按 utf8 处理
type DerivationRequest struct {
	Name      string   `json:"name"`
	ProgramID string   `json:"program_id,optional"` // 为空时使用顶层 program_id
	Seeds     []string `json:"seeds,optional"`
}

// CalculatorConfig 是主配置结构体
type CalculatorConfig struct {
	LogConf   LogConfig   `json:"logger"`            // 日志配置
	ProgramID string      `json:"program_id"`        // 计算器程序地址（base58）
	CacheConf CacheConfig `json:"cache,optional"`    // 派生缓存配置
	Workers   int         `json:"workers,default=4"` // 批量派生的并发数

	Instructions []InstructionRequest `json:"instructions,optional"`
	Derivations  []DerivationRequest  `json:"derivations,optional"`
}
