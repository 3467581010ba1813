// Package filter compiles CEL expressions into event predicates usable with
// cursor reads. The event is exposed to the expression through a JSON view,
// so any event type that marshals cleanly can be filtered.
package filter

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/cel-go/cel"
)

// Compile builds a predicate for event type T from a CEL expression.
// Variables available to the expression:
//   - event:  the event marshaled to JSON (maps, lists, scalars)
//   - text:   the JSON text of the event
//   - size:   length of the JSON text in bytes
//   - now_ms: current time in ms
//
// An empty expression compiles to an always-true predicate. Evaluation
// errors (including events that fail to marshal) make the predicate return
// false for that event.
func Compile[T any](expr string) (func(*T) bool, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return func(*T) bool { return true }, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("event", cel.DynType),
		cel.Variable("text", cel.StringType),
		cel.Variable("size", cel.IntType),
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return nil, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return nil, err
	}
	return func(ev *T) bool {
		raw, err := json.Marshal(ev)
		if err != nil {
			return false
		}
		var jsonObj any
		_ = json.Unmarshal(raw, &jsonObj)
		out, _, err := prog.Eval(map[string]any{
			"event":  jsonObj,
			"text":   string(raw),
			"size":   int64(len(raw)),
			"now_ms": time.Now().UnixMilli(),
		})
		if err != nil {
			return false
		}
		b, ok := out.Value().(bool)
		return ok && b
	}, nil
}
