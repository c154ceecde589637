package versions

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
	"github.com/rwx-research/dirtree/cmd/dirtree/config"
	"github.com/rwx-research/dirtree/internal/errors"
)

// ScriptFormat is the newest script format this build understands.
var ScriptFormat = semver.MustParse("1.0.0")

var (
	currentVersion   *semver.Version
	supportedScripts *semver.Constraints
)

func init() {
	var err error
	currentVersion, err = semver.NewVersion(config.Version)
	if err != nil {
		// Assume this is a development build and it is newer than any release.
		currentVersion = semver.MustParse("9999+" + config.Version)
	}

	supportedScripts, err = semver.NewConstraint(fmt.Sprintf("^%d", ScriptFormat.Major()))
	if err != nil {
		panic(err)
	}
}

func GetCliCurrentVersion() *semver.Version {
	return currentVersion
}

// CheckScriptVersion returns an error when a script declares a format version
// this build cannot read. Scripts without a version are accepted.
func CheckScriptVersion(declared string) error {
	if declared == "" {
		return nil
	}

	version, err := semver.NewVersion(declared)
	if err != nil {
		return errors.Wrapf(err, "invalid script version %q", declared)
	}

	if !supportedScripts.Check(version) {
		return errors.Errorf(
			"script version %s is not supported, this build of dirtree reads version %d scripts",
			version, ScriptFormat.Major(),
		)
	}

	return nil
}
