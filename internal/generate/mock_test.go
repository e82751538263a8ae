package generate

import (
	"context"

	"github.com/moorara/helpsync/internal/git"
)

type (
	RootMock struct {
		OutRoot string
	}

	TagsMock struct {
		OutTags  git.Tags
		OutError error
	}

	MockGitRepo struct {
		RootIndex int
		RootMocks []RootMock

		TagsIndex int
		TagsMocks []TagsMock
	}
)

func (m *MockGitRepo) Root() string {
	i := m.RootIndex
	m.RootIndex++
	return m.RootMocks[i].OutRoot
}

func (m *MockGitRepo) Tags() (git.Tags, error) {
	i := m.TagsIndex
	m.TagsIndex++
	return m.TagsMocks[i].OutTags, m.TagsMocks[i].OutError
}

type (
	CaptureMock struct {
		InContext context.Context
		InArgs    []string
		OutString string
		OutError  error
	}

	MockCapturer struct {
		CaptureIndex int
		CaptureMocks []CaptureMock
	}
)

func (m *MockCapturer) Capture(ctx context.Context, args ...string) (string, error) {
	i := m.CaptureIndex
	m.CaptureIndex++
	m.CaptureMocks[i].InContext = ctx
	m.CaptureMocks[i].InArgs = args
	return m.CaptureMocks[i].OutString, m.CaptureMocks[i].OutError
}

type (
	ReadMock struct {
		OutString string
		OutError  error
	}

	WriteMock struct {
		InString string
		OutError error
	}

	MockDocument struct {
		ReadIndex int
		ReadMocks []ReadMock

		WriteIndex int
		WriteMocks []WriteMock
	}
)

func (m *MockDocument) Read() (string, error) {
	i := m.ReadIndex
	m.ReadIndex++
	return m.ReadMocks[i].OutString, m.ReadMocks[i].OutError
}

func (m *MockDocument) Write(content string) error {
	i := m.WriteIndex
	m.WriteIndex++
	m.WriteMocks[i].InString = content
	return m.WriteMocks[i].OutError
}
