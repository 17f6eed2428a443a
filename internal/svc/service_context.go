package svc

import (
	"fmt"

	"sol-calculator/internal/cache"
	"sol-calculator/internal/config"
	"sol-calculator/internal/consts"
	"sol-calculator/internal/pkg/logger"
	"sol-calculator/internal/pkg/types"
)

// ServiceContext 包含批处理所需资源
type ServiceContext struct {
	Config       config.CalculatorConfig
	ProgramID    types.Pubkey
	AddressCache *cache.AddressCache
	Workers      int
}

// NewServiceContext 创建服务上下文
func NewServiceContext(c config.CalculatorConfig) (*ServiceContext, error) {
	// 1. 解析计算器程序地址
	programID, err := types.TryPubkeyFromBase58(c.ProgramID)
	if err != nil {
		logger.Errorf("[svc] program_id 解析失败: %v", err)
		return nil, fmt.Errorf("program_id: %w", err)
	}

	// 2. 初始化派生缓存
	addressCache, err := cache.NewAddressCache(c.CacheConf.Limit, c.CacheConf.Expire())
	if err != nil {
		logger.Errorf("[svc] 派生缓存初始化失败: %v", err)
		return nil, err
	}

	// 3. 并发数，默认不超过 CPU 核数
	workers := c.Workers
	if workers <= 0 || workers > consts.CpuCount {
		workers = consts.CpuCount
	}

	ctx := &ServiceContext{
		Config:       c,
		ProgramID:    programID,
		AddressCache: addressCache,
		Workers:      workers,
	}

	logger.Infof("[svc] 服务上下文初始化完成: program=%s, workers=%d", programID, workers)
	return ctx, nil
}
