package registry

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var opaqueKeywords = map[string]bool{
	"MATERIAL":                     true,
	"MATERIAL:NOMASS":              true,
	"MATERIAL:AIRGAP":              true,
	"MATERIAL:INFRAREDTRANSPARENT": true,
	"MATERIAL:ROOFVEGETATION":      true,
}

const windowPrefix = "WINDOWMATERIAL:"

// IsDefinition reports whether value is a full object definition rather than
// a bare name. Definitions always span several lines.
func IsDefinition(value string) bool {
	return len(strings.Split(strings.TrimSpace(value), "\n")) > 1
}

// ParseDefinition reads a single material object, e.g.
//
//	Material,
//	  Gypsum Board,   !- Name
//	  MediumSmooth,   !- Roughness
//	  ...;
func ParseDefinition(definition string) (Material, error) {
	code := stripComments(definition)
	end := strings.IndexByte(code, ';')
	if end < 0 {
		return Material{}, ErrNotTerminated
	}
	tokens := strings.Split(code[:end], ",")
	keyword := strings.TrimSpace(tokens[0])
	if keyword == "" {
		return Material{}, fmt.Errorf("%w: missing object keyword", ErrMalformed)
	}

	upper := strings.ToUpper(keyword)
	var category Category
	switch {
	case opaqueKeywords[upper]:
		category = Opaque
	case strings.HasPrefix(upper, windowPrefix):
		category = Window
	default:
		return Material{}, fmt.Errorf("%w: %s", ErrNotMaterial, keyword)
	}

	if len(tokens) < 2 || strings.TrimSpace(tokens[1]) == "" {
		return Material{}, fmt.Errorf("%w: %s has no name", ErrMalformed, keyword)
	}

	return Material{
		Name:       Key(tokens[1]),
		Keyword:    keyword,
		Category:   category,
		Definition: strings.TrimSpace(definition),
	}, nil
}

// SplitObjects splits an IDF document into object texts, each ending with
// its terminating semicolon. Semicolons inside "!" comments are ignored.
func SplitObjects(r io.Reader) ([]string, error) {
	var (
		objects []string
		current strings.Builder
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		for {
			code := line
			if i := strings.IndexByte(code, '!'); i >= 0 {
				code = code[:i]
			}
			end := strings.IndexByte(code, ';')
			if end < 0 {
				break
			}
			// keep the comment of the terminating line with its object
			tail := line[end+1:]
			if strings.TrimSpace(stripComments(tail)) == "" {
				current.WriteString(line)
				line = ""
			} else {
				current.WriteString(line[:end+1])
				line = tail
			}
			if obj := strings.TrimSpace(current.String()); obj != "" {
				objects = append(objects, obj)
			}
			current.Reset()
			if line == "" {
				break
			}
		}
		if strings.TrimSpace(line) != "" {
			current.WriteString(line)
			current.WriteByte('\n')
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return objects, nil
}

func stripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if j := strings.IndexByte(line, '!'); j >= 0 {
			lines[i] = line[:j]
		}
	}
	return strings.Join(lines, "\n")
}
