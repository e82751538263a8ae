package git

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Signature determines who and when created a commit or tag.
type Signature struct {
	Name  string
	Email string
	Time  time.Time
}

// After determines if a given signature is chronologically after another signature.
func (s Signature) After(t Signature) bool {
	return s.Time.After(t.Time)
}

func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %s", s.Name, s.Email, s.Time.Format(time.RFC3339))
}

// TagType determines type a Git tag.
type TagType int

const (
	// Void is not a real Git tag!
	Void TagType = iota
	// Lightweight is a lightweight Git tag.
	Lightweight
	// Annotated is an annotated Git tag.
	Annotated
)

func (t TagType) String() string {
	switch t {
	case Void:
		return "Void"
	case Lightweight:
		return "Lightweight"
	case Annotated:
		return "Annotated"
	default:
		return "Invalid"
	}
}

// Tag represents a Git tag.
type Tag struct {
	Type   TagType
	Hash   string
	Name   string
	Tagger Signature
}

func toLightweightTag(ref *plumbing.Reference, commitObj *object.Commit) Tag {
	name := strings.TrimPrefix(string(ref.Name()), "refs/tags/")

	// A lightweight tag has no tagger, so the committer is used instead
	return Tag{
		Type: Lightweight,
		Hash: ref.Hash().String(),
		Name: name,
		Tagger: Signature{
			Name:  commitObj.Committer.Name,
			Email: commitObj.Committer.Email,
			Time:  commitObj.Committer.When,
		},
	}
}

func toAnnotatedTag(tagObj *object.Tag) Tag {
	return Tag{
		Type: Annotated,
		Hash: tagObj.Hash.String(),
		Name: tagObj.Name,
		Tagger: Signature{
			Name:  tagObj.Tagger.Name,
			Email: tagObj.Tagger.Email,
			Time:  tagObj.Tagger.When,
		},
	}
}

// After determines if a given tag is chronologically after another tag.
func (t Tag) After(u Tag) bool {
	return t.Tagger.After(u.Tagger)
}

// Version returns the release version a tag stands for (v1.2.3 -> 1.2.3).
func (t Tag) Version() string {
	return strings.TrimPrefix(t.Name, "v")
}

func (t Tag) String() string {
	return fmt.Sprintf("%s %s %s [%s]", t.Type, t.Hash, t.Name, t.Tagger)
}

// Tags is a list of Git tags.
type Tags []Tag

// Sort sorts the list of tags by their times from the most recent to the least recent.
func (t Tags) Sort() Tags {
	sorted := make(Tags, len(t))
	copy(sorted, t)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].After(sorted[j])
	})

	return sorted
}

// Latest returns the most recent tag.
func (t Tags) Latest() (Tag, bool) {
	if len(t) == 0 {
		return Tag{}, false
	}

	return t.Sort()[0], true
}
