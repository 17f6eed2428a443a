package batch

import (
	"encoding/hex"

	"sol-calculator/internal/config"
	"sol-calculator/internal/logic/codec"
	"sol-calculator/internal/pkg/logger"
	"sol-calculator/internal/pkg/types"
	"sol-calculator/internal/svc"
	seedutil "sol-calculator/internal/utils"
	"sol-calculator/pkg/utils"
)

type InstructionResult struct {
	Operation   int64  `yaml:"operation"`
	Operand     int64  `yaml:"operand"`
	Description string `yaml:"description,omitempty"`
	Data        string `yaml:"data,omitempty"` // hex
	Error       string `yaml:"error,omitempty"`
}

type DerivationResult struct {
	Name      string `yaml:"name"`
	ProgramID string `yaml:"program_id"`
	Address   string `yaml:"address,omitempty"`
	Bump      uint8  `yaml:"bump"`
	Error     string `yaml:"error,omitempty"`
}

type Report struct {
	Instructions []InstructionResult `yaml:"instructions"`
	Derivations  []DerivationResult  `yaml:"derivations"`
}

// Run 编码配置中的全部指令并并发派生全部地址。单条失败只记录在结果中，不影响其余条目。
func Run(ctx *svc.ServiceContext) *Report {
	return &Report{
		Instructions: EncodeInstructions(ctx.Config.Instructions),
		Derivations:  DeriveAddresses(ctx, ctx.Config.Derivations),
	}
}

func EncodeInstructions(reqs []config.InstructionRequest) []InstructionResult {
	results := make([]InstructionResult, 0, len(reqs))
	for i, req := range reqs {
		r := InstructionResult{Operation: req.Operation, Operand: req.Operand}

		data, err := codec.EncodeValues(req.Operation, req.Operand)
		if err != nil {
			logger.Warnf("[batch] 指令编码失败: index=%d, err=%v", i, err)
			r.Error = err.Error()
			results = append(results, r)
			continue
		}
		r.Data = hex.EncodeToString(data)

		// 未知操作码仍然可以编码，只是没有描述
		desc, err := codec.Describe(codec.Operation(req.Operation), uint32(req.Operand))
		if err != nil {
			logger.Warnf("[batch] 指令描述失败: index=%d, err=%v", i, err)
			r.Error = err.Error()
		} else {
			logger.Infof("[batch] instruction[%d] → %s, data=%s", i, desc, r.Data)
		}
		r.Description = desc
		results = append(results, r)
	}
	return results
}

func DeriveAddresses(ctx *svc.ServiceContext, reqs []config.DerivationRequest) []DerivationResult {
	return utils.ParallelMap(reqs, ctx.Workers, func(req config.DerivationRequest) DerivationResult {
		return derive(ctx, req)
	})
}

func derive(ctx *svc.ServiceContext, req config.DerivationRequest) DerivationResult {
	r := DerivationResult{Name: req.Name}

	programID := ctx.ProgramID
	if req.ProgramID != "" {
		pid, err := types.TryPubkeyFromBase58(req.ProgramID)
		if err != nil {
			r.ProgramID = req.ProgramID
			r.Error = err.Error()
			logger.Warnf("[batch] derivation %q: %v", req.Name, err)
			return r
		}
		programID = pid
	}
	r.ProgramID = programID.String()

	seeds, err := seedutil.ParseSeeds(req.Seeds)
	if err != nil {
		r.Error = err.Error()
		logger.Warnf("[batch] derivation %q: %v", req.Name, err)
		return r
	}

	derived, err := ctx.AddressCache.FindProgramAddress(seeds, programID)
	if err != nil {
		r.Error = err.Error()
		logger.Warnf("[batch] derivation %q: %v", req.Name, err)
		return r
	}
	r.Address = derived.Address.String()
	r.Bump = derived.Bump
	logger.Infof("[batch] derivation %q → address=%s, bump=%d", req.Name, r.Address, r.Bump)
	return r
}
