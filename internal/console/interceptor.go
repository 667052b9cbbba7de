package console

import (
	"termfolio/internal/parser"
	"termfolio/pkg/consoletypes"
)

// Route names the command an interceptor wants a line dispatched to, with the
// arguments the handler should receive.
type Route struct {
	Command string
	Args    []string
}

// Interceptor gets a look at every non-empty line before normal name resolution.
// A stateful command family installs one to claim input that would otherwise not
// resolve, such as a bare answer letter while a question is pending.
type Interceptor interface {
	Intercept(raw string, line parser.ParsedLine, env consoletypes.Env) (Route, bool)
}

// InterceptorFunc adapts an ordinary function to the Interceptor interface.
type InterceptorFunc func(raw string, line parser.ParsedLine, env consoletypes.Env) (Route, bool)

// Intercept calls f(raw, line, env).
func (f InterceptorFunc) Intercept(raw string, line parser.ParsedLine, env consoletypes.Env) (Route, bool) {
	return f(raw, line, env)
}
