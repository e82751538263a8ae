package main

import (
	"context"
	"fmt"
	"os"

	"github.com/moorara/flagit"

	"github.com/moorara/helpsync/internal/generate"
	"github.com/moorara/helpsync/internal/git"
	"github.com/moorara/helpsync/internal/spec"
	"github.com/moorara/helpsync/pkg/log"
	"github.com/moorara/helpsync/version"
)

func main() {
	// We cannot enable the logger until the verbosity is known
	logger := log.New(log.None)

	// READING SPEC

	s := spec.Default()

	s, err := spec.FromFile(s)
	if err != nil {
		logger.Fatal(err)
	}

	if err := flagit.Populate(&s, false); err != nil {
		logger.Fatal(err)
	}

	// Update logger verbosity
	if s.General.Verbose {
		logger.ChangeVerbosity(log.Debug)
	} else if s.General.Print {
		logger.ChangeVerbosity(log.Error)
	} else {
		logger.ChangeVerbosity(log.Info)
	}

	logger.Debugf("%+v", s)

	// RUNNING COMMANDS

	switch {
	case s.Help:
		// The help text shows the built-in defaults, not the values from the spec file
		if err := spec.Default().PrintHelp(os.Stdout); err != nil {
			logger.Fatal(err)
		}

	case s.Version:
		fmt.Println(version.String())

	default:
		if err := s.Validate(); err != nil {
			logger.Fatal(err)
		}

		// The repository is optional unless the version is read from tags
		gitRepo, err := git.NewRepo(logger, ".")
		if err != nil {
			logger.Debugf("No git repository: %s", err)
			gitRepo = nil
		}

		g := generate.New(s, logger, gitRepo)

		if _, err := g.Generate(context.Background()); err != nil {
			logger.Fatal(err)
		}
	}
}
