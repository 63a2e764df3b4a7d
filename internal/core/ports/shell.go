// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/abbsmeta/internal/core/domain"
)

// Shell executes descriptor scripts.
//
// Descriptors are shell variable declarations and are evaluated with full shell
// semantics, including command substitution and globbing. A script can run
// arbitrary commands; implementations must bound its runtime through ctx.
//
//go:generate go run go.uber.org/mock/mockgen -source=shell.go -destination=mocks/mock_shell.go -package=mocks
type Shell interface {
	// Run executes script with dir as the working directory and returns the
	// captured standard output. Output captured before a failure is returned
	// together with the error.
	Run(ctx context.Context, dir, script string) ([]byte, error)
}

// AttributeEvaluator extracts the attribute vocabulary from descriptor text.
type AttributeEvaluator interface {
	// Evaluate concatenates specText and definesText, evaluates them in dir and
	// returns the attributes that were set. Shell failures and timeouts yield a
	// partial or empty set; only cancellation of ctx is returned as an error.
	Evaluate(ctx context.Context, dir, specText, definesText string) (domain.AttributeSet, error)
}
