package git

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	t1, _ = time.Parse(time.RFC3339, "2020-10-02T02:00:00-04:00")
	t2, _ = time.Parse(time.RFC3339, "2020-10-12T09:00:00-04:00")
	t3, _ = time.Parse(time.RFC3339, "2020-10-22T16:00:00-04:00")

	JohnDoe = Signature{
		Name:  "John Doe",
		Email: "john@doe.com",
		Time:  t1,
	}

	JaneDoe = Signature{
		Name:  "Jane Doe",
		Email: "jane@doe.com",
		Time:  t2,
	}

	JimDoe = Signature{
		Name:  "Jim Doe",
		Email: "jim@doe.com",
		Time:  t3,
	}

	tag1 = Tag{
		Type:   Lightweight,
		Hash:   "25aa2bdbaf10fa30b6db40c2c0a15d280ad9f378",
		Name:   "v0.1.0",
		Tagger: JohnDoe,
	}

	tag2 = Tag{
		Type:   Annotated,
		Hash:   "4ff025213430ac1d56f8ae5d0e9e2f1f8f4a9b1f",
		Name:   "v0.2.0",
		Tagger: JaneDoe,
	}

	tag3 = Tag{
		Type:   Annotated,
		Hash:   "c414d1004154c6c324bd78c69d10ee101e676059",
		Name:   "v0.3.0",
		Tagger: JimDoe,
	}
)

func TestSignature(t *testing.T) {
	assert.False(t, JohnDoe.After(JaneDoe))
	assert.True(t, JimDoe.After(JaneDoe))
	assert.Equal(t, "John Doe <john@doe.com> 2020-10-02T02:00:00-04:00", JohnDoe.String())
}

func TestTagType(t *testing.T) {
	tests := []struct {
		tagType        TagType
		expectedString string
	}{
		{Void, "Void"},
		{Lightweight, "Lightweight"},
		{Annotated, "Annotated"},
		{TagType(-1), "Invalid"},
	}

	for _, tc := range tests {
		t.Run(tc.expectedString, func(t *testing.T) {
			assert.Equal(t, tc.expectedString, tc.tagType.String())
		})
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		name            string
		t               Tag
		expectedVersion string
		expectedString  string
	}{
		{
			name:            "Zero",
			t:               Tag{},
			expectedVersion: "",
			expectedString:  "Void   [ <> 0001-01-01T00:00:00Z]",
		},
		{
			name:            "Lightweight",
			t:               tag1,
			expectedVersion: "0.1.0",
			expectedString:  "Lightweight 25aa2bdbaf10fa30b6db40c2c0a15d280ad9f378 v0.1.0 [John Doe <john@doe.com> 2020-10-02T02:00:00-04:00]",
		},
		{
			name:            "NoPrefix",
			t:               Tag{Type: Annotated, Name: "1.0.0", Tagger: JimDoe},
			expectedVersion: "1.0.0",
			expectedString:  "Annotated  1.0.0 [Jim Doe <jim@doe.com> 2020-10-22T16:00:00-04:00]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedVersion, tc.t.Version())
			assert.Equal(t, tc.expectedString, tc.t.String())
		})
	}
}

func TestTag_After(t *testing.T) {
	assert.False(t, tag1.After(tag2))
	assert.True(t, tag3.After(tag2))
}

func TestTags_Sort(t *testing.T) {
	tags := Tags{tag2, tag1, tag3}
	sorted := tags.Sort()

	assert.Equal(t, Tags{tag3, tag2, tag1}, sorted)
	assert.Equal(t, Tags{tag2, tag1, tag3}, tags)
}

func TestTags_Latest(t *testing.T) {
	tests := []struct {
		name        string
		tags        Tags
		expectedTag Tag
		expectedOK  bool
	}{
		{
			name:       "Empty",
			tags:       Tags{},
			expectedOK: false,
		},
		{
			name:        "Unsorted",
			tags:        Tags{tag1, tag3, tag2},
			expectedTag: tag3,
			expectedOK:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tag, ok := tc.tags.Latest()

			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expectedTag, tag)
		})
	}
}
