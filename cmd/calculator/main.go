package main

import (
	"flag"
	"os"
	"runtime/debug"

	"github.com/zeromicro/go-zero/core/conf"
	"gopkg.in/yaml.v3"

	"sol-calculator/internal/config"
	"sol-calculator/internal/logic/batch"
	"sol-calculator/internal/pkg/logger"
	"sol-calculator/internal/svc"
)

var configFile = flag.String("f", "etc/calculator.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
			logger.Sync()
			os.Exit(2)
		}
	}()

	flag.Parse()

	var c config.CalculatorConfig
	conf.MustLoad(*configFile, &c)

	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	logger.Infof("[main] 开始处理: instructions=%d, derivations=%d", len(c.Instructions), len(c.Derivations))
	report := batch.Run(serviceContext)

	// 报告输出到 stdout，日志可通过 logger.log_dir 分离到文件
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		logger.Errorf("[main] 输出报告失败: %v", err)
		return
	}
	_ = enc.Close()

	failed := 0
	for _, r := range report.Instructions {
		if r.Error != "" {
			failed++
		}
	}
	for _, r := range report.Derivations {
		if r.Error != "" {
			failed++
		}
	}
	if failed > 0 {
		logger.Warnf("[main] %d 个条目处理失败", failed)
	}
}
