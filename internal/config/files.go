package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FileSet is one entry of the files list: an ordered group of path
// patterns force-added to the release commit.
type FileSet struct {
	Src []string `yaml:"src"`
}

// UnmarshalYAML accepts the three shapes a files entry is commonly written
// in:
//
//	- dist/app.js                 # single pattern
//	- [dist/app.js, dist/app.map] # list of patterns
//	- src: dist/*.js              # mapping with src as string or list
func (f *FileSet) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		f.Src = []string{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := value.Decode(&ss); err != nil {
			return err
		}
		f.Src = ss
		return nil
	case yaml.MappingNode:
		var raw struct {
			Src yaml.Node `yaml:"src"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		if raw.Src.Kind == 0 {
			return fmt.Errorf("line %d: files entry is missing src", value.Line)
		}
		var inner FileSet
		if err := inner.UnmarshalYAML(&raw.Src); err != nil {
			return err
		}
		f.Src = inner.Src
		return nil
	default:
		return fmt.Errorf("line %d: unsupported files entry", value.Line)
	}
}

// FlattenFiles returns every pattern of every set, in order.
func FlattenFiles(sets []FileSet) []string {
	var out []string
	for _, s := range sets {
		out = append(out, s.Src...)
	}
	return out
}
