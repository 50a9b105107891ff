package builder

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrIncompatible is returned when the compatibility gate refuses a build.
var ErrIncompatible = errors.New("companion toolkits are not ready")

// Gate decides whether builds may run at all.
type Gate interface {
	Check() error
}

type GateFunc func() error

func (f GateFunc) Check() error { return f() }

// Open lets every build through.
var Open Gate = GateFunc(func() error { return nil })

// Companion is a toolkit that has to be loaded, in at least the Required
// version, before records are built.
type Companion struct {
	Name      string
	Required  string
	Installed string // empty when the toolkit is not loaded
}

// VersionGate requires every companion to be loaded and recent enough.
type VersionGate struct {
	Companions []Companion
}

func (g VersionGate) Check() error {
	var missing []string
	for _, c := range g.Companions {
		if strings.TrimSpace(c.Installed) == "" {
			missing = append(missing, c.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: you should first load %s", ErrIncompatible, strings.Join(missing, " and "))
	}

	for _, c := range g.Companions {
		installed := canonical(c.Installed)
		if installed == "" {
			return fmt.Errorf("%w: %s reports an invalid version %q", ErrIncompatible, c.Name, c.Installed)
		}
		required := canonical(c.Required)
		if required == "" {
			continue
		}
		if semver.Compare(installed, required) < 0 {
			return fmt.Errorf("%w: you need a newer version of %s (installed %s, required %s)",
				ErrIncompatible, c.Name, c.Installed, c.Required)
		}
	}
	return nil
}

// canonical accepts versions with or without the leading "v".
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
