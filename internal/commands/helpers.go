package commands

import (
	"fmt"

	"github.com/situ2001/oh-pluralize/internal/output"
	"github.com/situ2001/oh-pluralize/internal/rulefile"
	"github.com/situ2001/oh-pluralize/pluralize"
)

// loadEngine builds the default engine and applies custom rules from the
// --rules flag, or from a discovered pluralize.yml when no flag was given.
func loadEngine() (*pluralize.Engine, error) {
	engine := pluralize.NewDefault()

	var (
		file *rulefile.File
		path string
		err  error
	)

	if rulesPath != "" {
		path = rulesPath
		file, err = rulefile.Load(rulesPath)
	} else {
		file, path, err = rulefile.Discover()
	}
	if err != nil {
		return nil, err
	}

	if file == nil {
		return engine, nil
	}

	if err := rulefile.Apply(engine, file); err != nil {
		return nil, fmt.Errorf("applying rules from %s: %w", path, err)
	}
	output.Verbose(fmt.Sprintf("Loaded custom rules from %s", path))

	return engine, nil
}
