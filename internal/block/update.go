package block

import "strings"

// Status is the outcome of an update.
type Status int

const (
	// StatusUnknown is returned along with an error; nothing is known about the document.
	StatusUnknown Status = iota
	// StatusUpToDate means the managed block already has the new content.
	StatusUpToDate
	// StatusUpdated means the document was rewritten.
	StatusUpdated
)

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusUpToDate:
		return "already up to date"
	case StatusUpdated:
		return "updated"
	default:
		return "Invalid"
	}
}

// WriteFunc replaces the whole content of a document.
type WriteFunc func(content string) error

// Update substitutes the managed block with newBlock and passes the full document to write.
// Blocks are compared ignoring surrounding whitespace; if they are equal, write is not called.
// If write fails, StatusUnknown is returned.
func Update(p Parts, begin, end, newBlock string, write WriteFunc) (Status, error) {
	if strings.TrimSpace(p.Block) == strings.TrimSpace(newBlock) {
		return StatusUpToDate, nil
	}

	updated := Parts{
		Prefix: p.Prefix,
		Block:  newBlock,
		Suffix: p.Suffix,
	}

	if err := write(updated.String(begin, end)); err != nil {
		return StatusUnknown, err
	}

	return StatusUpdated, nil
}
