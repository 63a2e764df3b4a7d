// Package evaluator extracts package attributes from build descriptors by
// evaluating them with a shell.
package evaluator

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/zerr"
)

// Separator sits between an attribute name and its value in the shell output.
const Separator = "\x1f"

// escapedNewline replaces newlines inside values so every attribute stays on one line.
const escapedNewline = "\x1e"

// DefaultTimeout bounds a single evaluation when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options configures an Evaluator.
type Options struct {
	// Timeout bounds a single evaluation. Timed out evaluations yield an empty set.
	Timeout time.Duration
	// CacheSize is the number of results memoized by descriptor content.
	// Zero disables the cache.
	CacheSize int
}

// Evaluator implements ports.AttributeEvaluator on top of a ports.Shell.
type Evaluator struct {
	shell   ports.Shell
	logger  ports.Logger
	timeout time.Duration
	cache   *lru.Cache[uint64, domain.AttributeSet]
}

var _ ports.AttributeEvaluator = (*Evaluator)(nil)

// New creates an Evaluator.
func New(shell ports.Shell, logger ports.Logger, opts Options) (*Evaluator, error) {
	e := &Evaluator{
		shell:   shell,
		logger:  logger,
		timeout: opts.Timeout,
	}
	if e.timeout <= 0 {
		e.timeout = DefaultTimeout
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[uint64, domain.AttributeSet](opts.CacheSize)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to create evaluation cache")
		}
		e.cache = cache
	}
	return e, nil
}

// Evaluate runs spec then defines through the shell in dir and returns the
// vocabulary attributes that were set. Defines wins on any variable it redefines.
func (e *Evaluator) Evaluate(ctx context.Context, dir, specText, definesText string) (domain.AttributeSet, error) {
	script := BuildScript(specText, definesText)
	key := cacheKey(dir, script)
	if e.cache != nil {
		if attrs, ok := e.cache.Get(key); ok {
			return attrs, nil
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	out, err := e.shell.Run(runCtx, dir, script)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			e.logger.Warn("evaluation of " + dir + " timed out after " + e.timeout.String())
			return domain.AttributeSet{}, nil
		}
		// Whatever was echoed before the failure is still usable.
		e.logger.Warn("evaluation of " + dir + " failed: " + err.Error())
		return ParseOutput(out), nil
	}

	attrs := ParseOutput(out)
	if e.cache != nil {
		e.cache.Add(key, attrs)
	}
	return attrs, nil
}

// BuildScript concatenates the descriptors and appends one print instruction per
// vocabulary attribute. Only attributes that are set are printed.
func BuildScript(specText, definesText string) string {
	var b strings.Builder
	b.WriteString(specText)
	b.WriteString("\n")
	b.WriteString(definesText)
	b.WriteString("\n")
	for _, name := range domain.Vocabulary {
		// if [ -n "${NAME+x}" ]; then v=${NAME//$'\n'/$'\036'}; builtin printf '%s\037%s\n' 'NAME' "$v"; fi
		b.WriteString(`if [ -n "${`)
		b.WriteString(name)
		b.WriteString(`+x}" ]; then __abbsmeta_v=${`)
		b.WriteString(name)
		b.WriteString(`//$'\n'/$'\036'}; builtin printf '%s\037%s\n' '`)
		b.WriteString(name)
		b.WriteString(`' "$__abbsmeta_v"; fi`)
		b.WriteString("\n")
	}
	return b.String()
}

// ParseOutput turns shell output into an attribute set. A line contributes only
// when it holds a separator after a non-empty vocabulary name; later lines win.
func ParseOutput(out []byte) domain.AttributeSet {
	attrs := make(domain.AttributeSet)
	for line := range strings.SplitSeq(string(out), "\n") {
		key, value, ok := strings.Cut(line, Separator)
		if !ok || key == "" || !domain.IsKnownAttribute(key) {
			continue
		}
		attrs[key] = strings.ReplaceAll(value, escapedNewline, "\n")
	}
	return attrs
}

func cacheKey(dir, script string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(dir)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(script)
	return d.Sum64()
}
