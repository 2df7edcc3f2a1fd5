// Package config loads optional language-profile overlays, letting
// deployments add languages without recompiling the built-in table.
package config

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/lexibuild/lexibuild/pkg/lexibuild/internalerr"
	"github.com/lexibuild/lexibuild/pkg/lexibuild/languages"
)

// LoadLanguages loads extra language profiles from a YAML file.
//
// Expected format:
//
//	languages:
//	  - code: xyz
//	    name: Xyz
//	    bcp47: xy
//	    alphabet: abcdefg
//	    symbols: "-'0123456789"
//
// Symbols may be omitted. Codes must be unique within the file.
func LoadLanguages(path string) ([]languages.Language, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file struct {
		Languages []struct {
			Code     string `yaml:"code"`
			Name     string `yaml:"name"`
			BCP47    string `yaml:"bcp47"`
			Alphabet string `yaml:"alphabet"`
			Symbols  string `yaml:"symbols"`
		} `yaml:"languages"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	seen := make(map[string]struct{}, len(file.Languages))
	profiles := make([]languages.Language, 0, len(file.Languages))
	for i, entry := range file.Languages {
		switch {
		case entry.Code == "":
			return nil, fmt.Errorf("%w: %s: language %d has no code", internalerr.ErrInvalidConfig, path, i)
		case entry.Name == "":
			return nil, fmt.Errorf("%w: %s: language %q has no name", internalerr.ErrInvalidConfig, path, entry.Code)
		case entry.BCP47 == "":
			return nil, fmt.Errorf("%w: %s: language %q has no bcp47 tag", internalerr.ErrInvalidConfig, path, entry.Code)
		case entry.Alphabet == "":
			return nil, fmt.Errorf("%w: %s: language %q has no alphabet", internalerr.ErrInvalidConfig, path, entry.Code)
		}
		if _, ok := seen[entry.Code]; ok {
			return nil, fmt.Errorf("%w: %s: duplicate language code %q", internalerr.ErrInvalidConfig, path, entry.Code)
		}
		seen[entry.Code] = struct{}{}

		profiles = append(profiles, languages.New(
			entry.Code,
			entry.Name,
			language.Make(entry.BCP47),
			entry.Alphabet,
			entry.Symbols,
		))
	}

	return profiles, nil
}
