package cmd

import (
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/go-drift/ribbon/pkg/config"
	"github.com/go-drift/ribbon/pkg/errors"
	"github.com/go-drift/ribbon/pkg/host"
	"github.com/go-drift/ribbon/pkg/images"
	"github.com/go-drift/ribbon/pkg/resolve"
	"github.com/go-drift/ribbon/pkg/ribbon"
)

// project is a configured declaration directory.
type project struct {
	cfg    *config.Resolved
	logger *zap.Logger
	decls  *resolve.FS
	images *images.Registry
}

func (e *env) open() *project {
	fsys := os.DirFS(e.cfg.Root)
	p := &project{
		cfg:    e.cfg,
		logger: e.logger,
		decls:  resolve.NewFS(fsys, e.cfg.DeclDir, e.cfg.DeclExt),
		images: images.NewRegistry(),
	}
	p.loadImages(fsys)
	return p
}

// loadImages registers the configured images. A file that cannot be read or
// decoded is reported and skipped.
func (p *project) loadImages(fsys fs.FS) {
	keys := make([]string, 0, len(p.cfg.Images))
	for k := range p.cfg.Images {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := p.images.RegisterFS(k, fsys, p.cfg.Images[k]); err != nil {
			errors.Report(&errors.RibbonError{Op: "ribbonctl.images", Kind: errors.KindResource, ID: k, Err: err})
		}
	}
	p.logger.Debug("images loaded", zap.Int("count", p.images.Len()))
}

// ribbon creates a ribbon over h that resolves through r.
func (p *project) ribbon(h host.Host, r resolve.Resolver) (*ribbon.Ribbon, error) {
	return ribbon.New(h, r,
		ribbon.WithLogger(p.logger),
		ribbon.WithTabPrefix(p.cfg.TabPrefix),
		ribbon.WithMaxDepth(p.cfg.MaxDepth),
		ribbon.WithImages(p.images),
	)
}

// targets returns the tab ids a command operates on: the arguments, else the
// preload list, else every declaration file.
func (p *project) targets(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(p.cfg.Preload) > 0 {
		return p.cfg.Preload, nil
	}
	return p.decls.IDs()
}

func (p *project) contextual(id string) bool {
	return slices.Contains(p.cfg.Contextual, id)
}

func (p *project) declPath(id string) string {
	return path.Join(p.cfg.DeclDir, id+p.cfg.DeclExt)
}
