package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/moorara/helpsync/internal/block"
	"github.com/moorara/helpsync/internal/capture"
	"github.com/moorara/helpsync/internal/document"
	"github.com/moorara/helpsync/internal/git"
	"github.com/moorara/helpsync/internal/spec"
	"github.com/moorara/helpsync/pkg/log"
)

// ErrOutOfDate is returned in check mode when the document would be rewritten.
var ErrOutOfDate = errors.New("document is out-of-date")

// Generator regenerates the help block of a document.
type Generator struct {
	spec     spec.Spec
	logger   log.Logger
	gitRepo  git.Repo
	capturer capture.Capturer
	doc      document.Document
	file     string
	out      io.Writer
}

// New creates a new help block generator.
// gitRepo is optional; when set, relative paths are resolved against the root of the repository.
func New(s spec.Spec, logger log.Logger, gitRepo git.Repo) *Generator {
	root := "."
	if gitRepo != nil {
		root = gitRepo.Root()
	}

	file := resolvePath(root, s.General.File)
	dir := resolvePath(root, s.Command.Dir)

	return &Generator{
		spec:     s,
		logger:   logger,
		gitRepo:  gitRepo,
		capturer: capture.NewExec(logger, dir, s.Command.Name, s.Command.Args...),
		doc:      document.NewFile(logger, file),
		file:     file,
		out:      os.Stdout,
	}
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// resolveVersion determines the current release version of the tool.
func (g *Generator) resolveVersion(ctx context.Context) (string, error) {
	switch g.spec.Command.VersionSource {
	case spec.VersionFromTag:
		if g.gitRepo == nil {
			return "", errors.New("version source tag requires a git repository")
		}

		tags, err := g.gitRepo.Tags()
		if err != nil {
			return "", err
		}

		tag, ok := tags.Latest()
		if !ok {
			return "", errors.New("no git tag found")
		}

		g.logger.Debugf("Latest git tag: %s", tag.Name)

		return tag.Version(), nil

	default:
		out, err := g.capturer.Capture(ctx, g.spec.Command.VersionArgs...)
		if err != nil {
			return "", err
		}

		return capture.ParseVersion(out)
	}
}

// captureBlock runs the tool and normalizes its help text.
func (g *Generator) captureBlock(ctx context.Context) (string, error) {
	help, err := g.capturer.Capture(ctx, g.spec.Command.HelpArgs...)
	if err != nil {
		return "", err
	}

	version, err := g.resolveVersion(ctx)
	if err != nil {
		return "", err
	}

	g.logger.Infof("Captured help text for %s %s", g.spec.Product(), version)

	return block.Normalize(help, block.NormalizeOptions{
		Product:     g.spec.Product(),
		Version:     version,
		Placeholder: g.spec.Normalize.Placeholder,
		Wrap:        g.spec.Normalize.Wrap,
	}), nil
}

// locateBlock reads the document and finds the help block in it.
func (g *Generator) locateBlock(begin, end string) (block.Parts, error) {
	content, err := g.doc.Read()
	if err != nil {
		return block.Parts{}, err
	}

	parts, err := block.Locate(content, begin, end)
	if err != nil {
		return block.Parts{}, fmt.Errorf("%s: %w", g.file, err)
	}

	if parts.Repeated(begin) {
		g.logger.Warnf("%s has more than one help block, only the first one is updated", g.file)
	}

	return parts, nil
}

// Generate regenerates the help block and rewrites the document if the block has changed.
// On error, the returned status is block.StatusUnknown.
func (g *Generator) Generate(ctx context.Context) (block.Status, error) {
	begin, end := g.spec.Markers()

	var newBlock string
	var parts block.Parts

	// Capturing the help text and reading the document are independent
	grp, ctx := errgroup.WithContext(ctx)

	grp.Go(func() (err error) {
		newBlock, err = g.captureBlock(ctx)
		return err
	})

	grp.Go(func() (err error) {
		parts, err = g.locateBlock(begin, end)
		return err
	})

	if err := grp.Wait(); err != nil {
		return block.StatusUnknown, err
	}

	if g.spec.General.Print {
		fmt.Fprintln(g.out, newBlock)
	}

	write := func(content string) error {
		if g.spec.General.Check {
			return fmt.Errorf("%s: %w", g.file, ErrOutOfDate)
		}
		return g.doc.Write(content)
	}

	status, err := block.Update(parts, begin, end, newBlock, write)
	if err != nil {
		return status, err
	}

	g.logger.Infof("%s is %s", g.file, status)

	return status, nil
}
