package batch

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/romanparse/internal/roman"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// RomanFunc converts a numeral string to a number inside HCL expressions.
var RomanFunc = function.New(&function.Spec{
	Description: "Converts a Roman numeral to its integer value.",
	Params: []function.Parameter{
		{Name: "numeral", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		v, err := roman.Parse(args[0].AsString())
		if err != nil {
			return cty.UnknownVal(cty.Number), err
		}
		return cty.NumberIntVal(v), nil
	},
})

// Functions returns the functions available to batch expressions.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"roman":     RomanFunc,
		"upper":     stdlib.UpperFunc,
		"lower":     stdlib.LowerFunc,
		"trimspace": stdlib.TrimSpaceFunc,
		"join":      stdlib.JoinFunc,
	}
}

// newEvalContext builds the context batch attributes are evaluated in.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: Functions(),
	}
}
