package accumulators

import (
	"github.com/go-sif/sumagg"
	errors "github.com/go-sif/sumagg/errors"
)

// Resolve selects the Evaluator which sums a column of the given argument types. The
// returned Evaluator still has to be initialized via Init (or use Bind).
func Resolve(argTypes []sumagg.ColumnType) (sumagg.Evaluator, error) {
	if len(argTypes) != 1 {
		return nil, errors.ArityError{Context: "call", Expected: 1, Actual: len(argTypes)}
	}
	argType := argTypes[0]
	if argType == nil || argType.Category() != sumagg.PrimitiveCategory {
		return nil, errors.TypeCategoryError{Position: 0, TypeName: sumagg.TypeName(argType)}
	}
	switch tag := argType.Tag(); {
	case tag.IsIntegral():
		return &IntegralSum{}, nil
	case tag.IsFloating():
		return &FloatingSum{}, nil
	default:
		return nil, errors.UnsupportedTypeError{Position: 0, TypeName: sumagg.TypeName(argType)}
	}
}

// Bind resolves an Evaluator for the given argument types and initializes it for mode,
// returning it alongside its output type
func Bind(mode sumagg.Mode, argTypes ...sumagg.ColumnType) (sumagg.Evaluator, sumagg.ColumnType, error) {
	eval, err := Resolve(argTypes)
	if err != nil {
		return nil, nil, err
	}
	outType, err := eval.Init(mode, argTypes...)
	if err != nil {
		return nil, nil, err
	}
	return eval, outType, nil
}
