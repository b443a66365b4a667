package expression

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Condition is a reusable boolean evaluator bound to one expression text.
//
// The bound text can be swapped with SetExpression without discarding the
// compiled-program cache, so rebinding to previously seen text never
// recompiles. This supports live editing of an element's visibility
// expression between evaluations.
//
// Condition is not safe for concurrent use.
type Condition struct {
	text     string
	programs map[string]*vm.Program
}

// New creates a Condition bound to the given expression text.
// Nothing is compiled until the first Run.
func New(text string) *Condition {
	return &Condition{
		text:     text,
		programs: make(map[string]*vm.Program),
	}
}

// Expression returns the currently bound expression text.
func (c *Condition) Expression() string {
	return c.text
}

// SetExpression rebinds the condition to new expression text.
// Compiled programs for earlier texts are retained.
func (c *Condition) SetExpression(text string) {
	c.text = text
}

// Run evaluates the bound expression against values and returns the result
// as a boolean. An empty expression evaluates to true. Value names are
// normalized the same way placeholders are, so "{user name}" matches the
// value stored under "user name".
func (c *Condition) Run(values map[string]any) (bool, error) {
	if c.text == "" {
		return true, nil
	}

	program, err := c.compile(c.text)
	if err != nil {
		return false, &EvalError{Op: "compile", Expression: c.text, Err: err}
	}

	env := make(map[string]any, len(values))
	for k, v := range values {
		env[identifier(k)] = v
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return false, &EvalError{Op: "run", Expression: c.text, Err: err}
	}

	b, ok := result.(bool)
	if !ok {
		return false, &EvalError{
			Op:         "run",
			Expression: c.text,
			Err:        fmt.Errorf("expression must return boolean, got %T (%v)", result, result),
		}
	}
	return b, nil
}

// compile compiles the expression text, caching the result on the Condition.
func (c *Condition) compile(text string) (*vm.Program, error) {
	if program, ok := c.programs[text]; ok {
		return program, nil
	}

	source, err := Translate(text)
	if err != nil {
		return nil, err
	}

	program, err := expr.Compile(source,
		// Values are supplied per evaluation; unknown names resolve to nil.
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, err
	}

	c.programs[text] = program
	return program, nil
}

// CacheSize returns the number of cached compiled programs.
// This is mainly useful for testing.
func (c *Condition) CacheSize() int {
	return len(c.programs)
}

// EvalError wraps a compilation or evaluation failure with the expression
// text that caused it.
type EvalError struct {
	// Op is the operation that failed ("compile" or "run").
	Op string
	// Expression is the bound expression text.
	Expression string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return fmt.Sprintf("condition %s %q: %v", e.Op, e.Expression, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *EvalError) Unwrap() error {
	return e.Err
}
