package cli

import (
	"github.com/rwx-research/dirtree/internal/command"
	"github.com/rwx-research/dirtree/internal/errors"
)

// scripts resolves the configured command source into scripts, in the order
// they should run.
func (s Service) scripts(cfg RunConfig) ([]*command.Script, error) {
	if cfg.Demo {
		return []*command.Script{command.DemoScript()}, nil
	}

	if len(cfg.Commands) > 0 {
		return []*command.Script{command.FromStrings("arguments", cfg.Commands)}, nil
	}

	scripts := make([]*command.Script, 0, len(cfg.Files))
	for _, file := range cfg.Files {
		script, err := s.loadScript(file)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, script)
	}

	return scripts, nil
}

func (s Service) loadScript(file string) (*command.Script, error) {
	exists, err := s.FileSystem.Exists(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to determine if %q exists", file)
	}
	if !exists {
		return nil, errors.Errorf("You specified %q, but %q could not be found", file, file)
	}

	fd, err := s.FileSystem.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %q", file)
	}
	defer fd.Close()

	return command.Load(file, fd)
}
