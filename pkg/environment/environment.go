package environment

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Environment names the deployment stage the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ErrUnknownEnvironment is returned by Parse for names outside the known set.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Parse maps a configured name, short aliases included, to an Environment.
func Parse(name string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "development", "dev", "local":
		return Development, nil
	case "staging", "stage":
		return Staging, nil
	case "production", "prod":
		return Production, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, name)
}

// IsProduction reports whether e is the production stage.
func (e Environment) IsProduction() bool { return e == Production }

// Verbose reports whether rejection details such as decoder messages may be
// exposed to clients.
func (e Environment) Verbose() bool { return e == Development || e == "" }

func (e Environment) String() string { return string(e) }

type contextKey struct{}

// WithContext stores env in ctx.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext returns the environment stored in ctx, or "" when none is.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}
