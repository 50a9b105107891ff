package builder

import (
	"epconf/diagnostic"
	"epconf/model"
	"epconf/registry"
)

// ResolveMaterial turns the _name input into the canonical material name.
// A multi-line value is a full definition and is registered first, replacing
// any material of the same name. Window materials are refused because
// EnergyPlus only applies phase change properties to opaque layers; a window
// definition is refused before it reaches the registry.
func ResolveMaterial(value string, reg registry.Registry) (string, *diagnostic.Diagnostic) {
	name := value
	definition := registry.IsDefinition(value)
	if definition {
		parsed, err := registry.ParseDefinition(value)
		if err != nil {
			return "", unknownMaterial(firstLine(value), err)
		}
		if parsed.Category == registry.Window {
			return "", windowMaterial(parsed.Name)
		}
		name = parsed.Name
	}

	key := registry.Key(name)
	if locker, ok := reg.(registry.NameLocker); ok {
		unlock := locker.LockName(key)
		defer unlock()
	}

	if definition {
		m, err := reg.RegisterOrOverwrite(value)
		if err != nil {
			return "", unknownMaterial(key, err)
		}
		key = registry.Key(m.Name)
	}

	m, ok := reg.Lookup(key)
	if !ok {
		return "", unknownMaterial(key, nil)
	}
	if m.Category == registry.Window {
		return "", windowMaterial(key)
	}
	return key, nil
}

func windowMaterial(name string) *diagnostic.Diagnostic {
	d := diagnostic.New(diagnostic.UnsupportedMaterialCategory, model.KeyName,
		"%s is a window material, phase change properties can only be attached to opaque materials", name)
	return &d
}

func unknownMaterial(name string, cause error) *diagnostic.Diagnostic {
	d := diagnostic.New(diagnostic.UnknownMaterial, model.KeyName,
		"%s is not a valid material name/definition, create the material first and try again", name)
	if cause != nil {
		d.Message += ": " + cause.Error()
	}
	return &d
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
