package launcher

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/license-gate/constant"
	"github.com/LerianStudio/license-gate/pkg"
)

// Resolver builds the ordered candidate list for the executable:
// saved override, then the embedded hint, then the platform defaults.
type Resolver struct {
	overrides OverrideStore
	hint      string
	defaults  []string
	goos      string
	logger    log.Logger

	stat      func(string) (fs.FileInfo, error)
	lookupEnv func(string) (string, bool)
}

// NewResolver creates a Resolver. When defaults is empty the built-in
// locations for goos are used.
func NewResolver(overrides OverrideStore, hint string, defaults []string, goos string, logger log.Logger) *Resolver {
	if len(defaults) == 0 {
		defaults = cn.DefaultCandidates[goos]
	}

	return &Resolver{
		overrides: overrides,
		hint:      hint,
		defaults:  defaults,
		goos:      goos,
		logger:    logger,
		stat:      os.Stat,
		lookupEnv: os.LookupEnv,
	}
}

// Platform returns the OS family the resolver targets.
func (r *Resolver) Platform() string {
	return r.goos
}

// Candidates returns the deduplicated candidate paths without touching the filesystem.
func (r *Resolver) Candidates(ctx context.Context) []string {
	paths := make([]string, 0, len(r.defaults)+2)

	if r.overrides != nil {
		override, err := r.overrides.Get(ctx)
		if err != nil {
			r.logger.Warnf("Ignoring unreadable launch override: %v", err)
		}

		paths = append(paths, override)
	}

	paths = append(paths, r.hint)

	for _, p := range r.defaults {
		expanded, ok := pkg.ExpandPath(p, r.lookupEnv)
		if !ok {
			continue
		}

		paths = append(paths, expanded)
	}

	return pkg.UniqueNonEmpty(paths...)
}

// Resolve returns the first candidate present on disk, or "".
func (r *Resolver) Resolve(ctx context.Context) string {
	for _, p := range r.Candidates(ctx) {
		if r.Exists(p) {
			return p
		}
	}

	return ""
}

// Exists reports whether path names a file. Stat failures count as absence.
func (r *Resolver) Exists(path string) bool {
	info, err := r.stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warnf("Cannot stat launch candidate %s: %v", path, err)
		}

		return false
	}

	return !info.IsDir()
}
