// Package pipeline moves CSV text through table transforms and drives the
// configured payout jobs over a file collaborator.
package pipeline

import (
	"context"

	"broker-commission/internal/csvtable"
	"broker-commission/internal/interfaces"
	"broker-commission/internal/types"
)

// Transform maps one decoded table to another.
type Transform func(ctx context.Context, t types.Table) (types.Table, error)

// Run decodes input, applies fn and encodes the result. Decode errors are
// returned as is and fn is not called.
func Run(ctx context.Context, input string, fn Transform) (string, error) {
	table, err := csvtable.Decode(input)
	if err != nil {
		return "", err
	}
	out, err := fn(ctx, table)
	if err != nil {
		return "", err
	}
	return csvtable.Encode(out), nil
}

// Compose chains fns left to right.
func Compose(fns ...Transform) Transform {
	return func(ctx context.Context, t types.Table) (types.Table, error) {
		var err error
		for _, fn := range fns {
			if t, err = fn(ctx, t); err != nil {
				return nil, err
			}
		}
		return t, nil
	}
}

func GenerateWith(gen interfaces.Generator, structure types.BonusStructure) Transform {
	return func(ctx context.Context, t types.Table) (types.Table, error) {
		return gen.Generate(ctx, t, structure)
	}
}

func SummarizeWith(sum interfaces.Summarizer) Transform {
	return sum.Summarize
}
