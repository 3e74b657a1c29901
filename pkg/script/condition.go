package script

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	goversion "github.com/hashicorp/go-version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Condition is a compiled boolean expression such as `gdb`,
// `debugger == "cdb" && major >= 10` or `versionAtLeast(version, "10.2")`.
type Condition struct {
	Source  string
	program *vm.Program
}

func CompileCondition(src string) (*Condition, error) {
	program, err := expr.Compile(src,
		expr.AllowUndefinedVariables(),
		expr.Function("versionAtLeast", versionAtLeast, new(func(string, string) bool)),
		expr.AsBool())
	if err != nil {
		return nil, err
	}
	return &Condition{Source: src, program: program}, nil
}

// Evaluate runs the condition against ctx. Undefined names evaluate to nil, which is false.
func (c *Condition) Evaluate(ctx EvaluationContext) (bool, error) {
	env := ctx.Values
	if env == nil {
		env = map[string]interface{}{}
	}
	out, err := expr.Run(c.program, env)
	if err != nil {
		return false, err
	}
	switch v := out.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("condition %q evaluated to %T, expected bool", c.Source, out)
	}
}

// Holds is Evaluate with errors treated as false.
func (c *Condition) Holds(ctx EvaluationContext) bool {
	ok, err := c.Evaluate(ctx)
	if err != nil {
		log.WithFields(log.Fields{"condition": c.Source, "err": err}).Warn("can't evaluate condition")
		return false
	}
	return ok
}

// versionAtLeast compares dotted versions segment by segment, so 9.2 is below 10.
func versionAtLeast(params ...interface{}) (interface{}, error) {
	versions := make([]*goversion.Version, len(params))
	for i, p := range params {
		s, ok := p.(string)
		if !ok {
			return nil, fmt.Errorf("versionAtLeast: expected a version string, got %T", p)
		}
		v, err := goversion.NewVersion(s)
		if err != nil {
			return nil, errors.Wrapf(err, "versionAtLeast: parsing %q", s)
		}
		versions[i] = v
	}
	return versions[0].GreaterThanOrEqual(versions[1]), nil
}
