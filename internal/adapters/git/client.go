// Package git provides the version control adapter used for incremental scans.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/zerr"
)

// diffCacheSize is the number of whole-tree diffs kept in memory.
const diffCacheSize = 16

// Client implements ports.DiffProvider and ports.Syncer with the git binary.
type Client struct {
	logger ports.Logger
	binary string
	diffs  *lru.Cache[string, []string]
}

var (
	_ ports.DiffProvider = (*Client)(nil)
	_ ports.Syncer       = (*Client)(nil)
)

// NewClient creates a new Client.
func NewClient(logger ports.Logger) (*Client, error) {
	diffs, err := lru.New[string, []string](diffCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create diff cache")
	}
	return &Client{
		logger: logger,
		binary: "git",
		diffs:  diffs,
	}, nil
}

// VerifyRevision checks that rev resolves to a commit in the repository at root.
func (c *Client) VerifyRevision(ctx context.Context, root, rev string) error {
	if rev == "" || strings.HasPrefix(rev, "-") {
		return zerr.With(domain.ErrInvalidRevision, "revision", rev)
	}
	if _, err := c.run(ctx, root, "rev-parse", "--verify", "--quiet", rev+"^{commit}"); err != nil {
		return zerr.With(errors.Join(domain.ErrInvalidRevision, err), "revision", rev)
	}
	return nil
}

// Changed lists the paths below root that differ between revA and revB,
// relative to root. Renames are
// reported as a deletion plus an addition so both sides count as changed.
func (c *Client) Changed(ctx context.Context, root, revA, revB, scope string) ([]string, error) {
	key := root + "\x00" + revA + "\x00" + revB
	if scope == "" {
		if paths, ok := c.diffs.Get(key); ok {
			return paths, nil
		}
	}

	args := []string{"diff", "--name-only", "--no-renames", "--relative", "-z", revA, revB}
	if scope != "" {
		args = append(args, "--", ":(literal)"+scope)
	}
	out, err := c.run(ctx, root, args...)
	if err != nil {
		err = zerr.With(errors.Join(domain.ErrDiffFailed, err), "from", revA)
		return nil, zerr.With(err, "to", revB)
	}

	var paths []string
	for path := range strings.SplitSeq(string(out), "\x00") {
		if path != "" {
			paths = append(paths, path)
		}
	}

	if scope == "" {
		c.diffs.Add(key, paths)
	}
	return paths, nil
}

// Sync fast-forwards the checked out branch from its upstream.
func (c *Client) Sync(ctx context.Context, root string) error {
	c.logger.Info("syncing " + root)
	if _, err := c.run(ctx, root, "pull", "--ff-only", "--quiet"); err != nil {
		return zerr.With(errors.Join(domain.ErrSyncFailed, err), "root", root)
	}
	return nil
}

func (c *Client) run(ctx context.Context, root string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.binary, append([]string{"-C", root}, args...)...) //nolint:gosec // arguments are built from validated revisions

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		err = zerr.With(zerr.Wrap(err, "git command failed"), "args", strings.Join(args, " "))
		return nil, zerr.With(err, "stderr", strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
