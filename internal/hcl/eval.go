package hcl

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the variables and functions available to config
// expressions. environ defaults to os.Environ.
func newEvalContext(environ func() []string) *hcl.EvalContext {
	if environ == nil {
		environ = os.Environ
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envObject(environ()),
		},
		Functions: map[string]function.Function{
			"abs":    stdlib.AbsoluteFunc,
			"min":    stdlib.MinFunc,
			"max":    stdlib.MaxFunc,
			"format": stdlib.FormatFunc,
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
		},
	}
}

// envObject turns KEY=VALUE pairs into a cty object. Later duplicates win.
func envObject(environ []string) cty.Value {
	attrs := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		attrs[key] = cty.StringVal(value)
	}
	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}
