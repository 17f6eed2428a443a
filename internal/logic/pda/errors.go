package pda

import "errors"

var (
	ErrSeedConstraintViolation = errors.New("seed constraint violation")
	ErrInvalidProgramId        = errors.New("invalid program id")
	ErrDerivationExhausted     = errors.New("unable to find a viable program address bump seed")
	// ErrOnCurve CreateProgramAddress 的候选地址落在曲线上（该 bump 不可用）
	ErrOnCurve = errors.New("derived address is on the ed25519 curve")
)
