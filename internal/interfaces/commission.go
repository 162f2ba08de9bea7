package interfaces

import (
	"context"

	"broker-commission/internal/types"
)

// Normalizer rewrites case values into the home currency.
type Normalizer interface {
	Normalize(ctx context.Context, cases types.Table) (types.Table, error)
}

// Generator turns a case table into a commission table for one bonus structure.
type Generator interface {
	Generate(ctx context.Context, cases types.Table, structure types.BonusStructure) (types.Table, error)
}

// Summarizer reduces a commission table to one total per broker.
type Summarizer interface {
	Summarize(ctx context.Context, commissions types.Table) (types.Table, error)
}

type Calculator interface {
	Generator
	Summarizer
}
