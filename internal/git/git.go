package git

import (
	"errors"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/moorara/helpsync/pkg/log"
)

// Repo is the abstraction for a local Git repository.
type Repo interface {
	Root() string
	Tags() (Tags, error)
}

// repo implements the Repo interface.
type repo struct {
	logger log.Logger
	git    *git.Repository
	root   string
}

// NewRepo opens the Git repository containing the given path.
func NewRepo(logger log.Logger, path string) (Repo, error) {
	g, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})

	if err != nil {
		return nil, err
	}

	wt, err := g.Worktree()
	if err != nil {
		return nil, err
	}

	root := wt.Filesystem.Root()
	logger.Debugf("Git repository found at %s", root)

	return &repo{
		logger: logger,
		git:    g,
		root:   root,
	}, nil
}

// Root returns the top-level directory of the working tree.
func (r *repo) Root() string {
	return r.root
}

// Tags returns all tags for the Git repository.
func (r *repo) Tags() (Tags, error) {
	r.logger.Debug("Reading git tags ...")

	tags := Tags{}

	refs, err := r.git.Tags()
	if err != nil {
		return nil, err
	}

	err = refs.ForEach(func(ref *plumbing.Reference) error {
		tagObj, err := r.git.TagObject(ref.Hash())
		switch {
		// Annotated tag
		case err == nil:
			tags = append(tags, toAnnotatedTag(tagObj))

		// Lightweight tag
		case errors.Is(err, plumbing.ErrObjectNotFound):
			commitObj, err := r.git.CommitObject(ref.Hash())
			if err != nil {
				return err
			}
			tags = append(tags, toLightweightTag(ref, commitObj))

		default:
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	r.logger.Debugf("Git tags read: %d", len(tags))

	return tags, nil
}
