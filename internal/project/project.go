// Package project resolves a best-effort project name for the directory an
// agent hook ran in.
package project

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// probeTimeout bounds the repository probe so enrichment can never stall
// process exit.
const probeTimeout = 3 * time.Second

// Resolve returns a short project name for the given working-directory
// hint, preferring the repository's top-level directory name when the
// directory is inside a git worktree. The hint (usually the payload's cwd
// field) wins over the process working directory. Resolution never fails;
// it returns "" when nothing sensible can be derived.
func Resolve(ctx context.Context, hint string) string {
	dir := hint
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if dir == "" {
		return ""
	}

	if name := repoName(ctx, dir); name != "" {
		return name
	}
	return baseName(dir)
}

// repoName resolves the worktree root name via go-git, bounded by
// probeTimeout. Any error (not a repository, bare repository, timeout)
// yields "".
func repoName(ctx context.Context, dir string) string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	found := make(chan string, 1)
	go func() {
		repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			found <- ""
			return
		}
		wt, err := repo.Worktree()
		if err != nil {
			found <- ""
			return
		}
		found <- baseName(wt.Filesystem.Root())
	}()

	select {
	case name := <-found:
		return name
	case <-ctx.Done():
		slog.Debug("repository probe timed out", "dir", dir)
		return ""
	}
}

// baseName returns the final path segment, or "" for degenerate paths.
func baseName(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	switch base {
	case ".", string(filepath.Separator):
		return ""
	}
	return base
}
