package spec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const helpTemplate = `
  helpsync keeps the help text of a command-line tool embedded in a document up-to-date.
  It runs the tool, replaces the version in the output with a placeholder,
  and rewrites the block between the begin and end markers only if it has changed.

  Usage: helpsync [flags]

  Flags:

    -help                  Show the help text
    -version               Print the version number

    -file                  The document containing the help block (default: {{.General.File}})
    -print                 Print the normalized help block to STDOUT (default: {{.General.Print}})
    -check                 Fail instead of writing if the document is out-of-date (default: {{.General.Check}})
    -verbose               Show the verbosity logs (default: {{.General.Verbose}})

    -command               The tool to run (required)
    -args                  Leading arguments for every run of the tool, e.g. run,-- (default: {{Join .Command.Args ","}})
    -dir                   The working directory for running the tool (default: the repository root)
    -usage-flags           The arguments for printing the help text (default: {{Join .Command.HelpArgs ","}})
    -release-flags         The arguments for printing the version (default: {{Join .Command.VersionArgs ","}})

    -fence                 The info string of the fenced code block holding the help text (default: {{.Block.Fence}})

    -product               The name preceding the version in the help text, as in name/1.2.3 (default: the command name)
    -placeholder           The text replacing the version (default: {{.Normalize.Placeholder}})
    -wrap                  Wrap the help text at this width, 0 disables wrapping (default: {{.Normalize.Wrap}})

    -source                Where the current version is read from (values: command|tag) (default: {{.Command.VersionSource}})

  The begin and end markers can be set explicitly in the spec file (helpsync.yml).

  Examples:

    helpsync -command=lychee
    helpsync -command=cargo -args=run,-- -product=lychee
    helpsync -command=./bin/tool -check
    helpsync -command=lychee -usage-flags=-h -release-flags=-V
    helpsync -command=lychee -source=tag

`

// VersionSource determines where the current version of the tool is read from.
type VersionSource string

const (
	// VersionFromCommand runs the tool with the version arguments.
	VersionFromCommand = VersionSource("command")
	// VersionFromTag uses the most recent Git tag.
	VersionFromTag = VersionSource("tag")
)

var specFiles = []string{"helpsync.yml", "helpsync.yaml"}

// Spec has all the settings required for updating a help block.
// Flags are matched by name anywhere in an argument, so no flag name may occur inside another one.
type Spec struct {
	Help    bool `yaml:"-" flag:"help"`
	Version bool `yaml:"-" flag:"version"`

	General struct {
		File    string `yaml:"file" flag:"file"`
		Print   bool   `yaml:"print" flag:"print"`
		Check   bool   `yaml:"check" flag:"check"`
		Verbose bool   `yaml:"verbose" flag:"verbose"`
	} `yaml:"general"`

	Command struct {
		Name        string   `yaml:"name" flag:"command"`
		Args        []string `yaml:"args" flag:"args"`
		Dir         string   `yaml:"dir" flag:"dir"`
		HelpArgs    []string `yaml:"help-args" flag:"usage-flags"`
		VersionArgs []string `yaml:"version-args" flag:"release-flags"`

		VersionSource VersionSource `yaml:"version-source" flag:"source"`
	} `yaml:"command"`

	Block struct {
		Fence string `yaml:"fence" flag:"fence"`
		Begin string `yaml:"begin"`
		End   string `yaml:"end"`
	} `yaml:"block"`

	Normalize struct {
		Product     string `yaml:"product" flag:"product"`
		Placeholder string `yaml:"placeholder" flag:"placeholder"`
		Wrap        uint   `yaml:"wrap" flag:"wrap"`
	} `yaml:"normalize"`
}

// Default returns a spec with default values.
func Default() Spec {
	spec := Spec{
		Help:    false,
		Version: false,
	}

	spec.General.File = "README.md"
	spec.General.Print = false
	spec.General.Check = false
	spec.General.Verbose = false

	spec.Command.Name = ""
	spec.Command.Args = []string{}
	spec.Command.Dir = ""
	spec.Command.HelpArgs = []string{"--help"}
	spec.Command.VersionArgs = []string{"--version"}
	spec.Command.VersionSource = VersionFromCommand

	spec.Block.Fence = "help-message"
	spec.Block.Begin = ""
	spec.Block.End = ""

	spec.Normalize.Product = ""
	spec.Normalize.Placeholder = "x.y.z"
	spec.Normalize.Wrap = 0

	return spec
}

// FromFile updates a spec from the first spec file found in the current directory.
// If no spec file is found, the given spec is returned unchanged.
func FromFile(s Spec) (Spec, error) {
	for _, name := range specFiles {
		f, err := os.Open(name)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Spec{}, err
		}
		defer f.Close()

		if err = yaml.NewDecoder(f).Decode(&s); err != nil {
			return Spec{}, err
		}

		return s, nil
	}

	return s, nil
}

// Markers returns the begin and end markers delimiting the help block.
// Unless set explicitly, they are derived from the fence: the block is a fenced code block on its own lines.
func (s Spec) Markers() (string, string) {
	begin, end := s.Block.Begin, s.Block.End

	if begin == "" {
		begin = "\n```" + s.Block.Fence + "\n"
	}

	if end == "" {
		end = "\n```\n"
	}

	return begin, end
}

// Product returns the name preceding the version in the help text.
func (s Spec) Product() string {
	if s.Normalize.Product != "" {
		return s.Normalize.Product
	}

	return filepath.Base(s.Command.Name)
}

// Validate checks whether or not a spec is complete.
func (s Spec) Validate() error {
	if s.Command.Name == "" {
		return errors.New("command is required")
	}

	if s.General.File == "" {
		return errors.New("file is required")
	}

	if len(s.Command.HelpArgs) == 0 {
		return errors.New("help-args is required")
	}

	if s.Block.Fence == "" && s.Block.Begin == "" {
		return errors.New("either fence or begin marker is required")
	}

	switch s.Command.VersionSource {
	case VersionFromCommand:
		if len(s.Command.VersionArgs) == 0 {
			return errors.New("version-args is required for version source command")
		}
	case VersionFromTag:
	default:
		return fmt.Errorf("invalid version source: %s", s.Command.VersionSource)
	}

	return nil
}

// PrintHelp prints the help text.
func (s Spec) PrintHelp(w io.Writer) error {
	tmpl := template.New("help")
	tmpl = tmpl.Funcs(template.FuncMap{
		"Join": strings.Join,
	})

	tmpl, err := tmpl.Parse(helpTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, s)
}
