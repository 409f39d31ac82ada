package dialect

import (
	"fmt"
	"log/slog"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/leapstack-labs/sqlsift/pkg/token"
)

// fileConfig is the YAML shape accepted by LoadFile:
//
//	dialects:
//	  - name: hive
//	    base: ansi
//	    batch_separators: [go]
//	    keywords:
//	      Keyword: [lateral, view]
//	      Name.Builtin: [string, map]
//	    rules:
//	      - pattern: '\{\{[\s\S]*?\}\}'
//	        type: Comment.Multiline
//	        opens: '{{'
type fileConfig struct {
	Dialects []dialectConfig `koanf:"dialects"`
}

type dialectConfig struct {
	Name            string              `koanf:"name"`
	Base            string              `koanf:"base"`
	BatchSeparators []string            `koanf:"batch_separators"`
	Keywords        map[string][]string `koanf:"keywords"`
	Rules           []ruleConfig        `koanf:"rules"`
}

type ruleConfig struct {
	Pattern string `koanf:"pattern"`
	Type    string `koanf:"type"`
	// Opens marks a delimited construct that may span streamed reads,
	// e.g. "{{" for the template-comment rule above.
	Opens string `koanf:"opens"`
}

// defaults applied under the file's values.
var defaults = map[string]any{
	"dialects": []any{},
}

// LoadFile registers the dialects declared in a YAML config file. Variants
// are layered onto their base table the same way built-in dialects are.
// Any problem with the file is a configuration error returned here, before
// any input is lexed; nothing is registered on error.
func LoadFile(path string) error {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return fmt.Errorf("dialect config defaults: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("dialect config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return fmt.Errorf("dialect config %s: %w", path, err)
	}

	built := make([]*Dialect, 0, len(cfg.Dialects))
	for _, dc := range cfg.Dialects {
		d, err := buildFromConfig(dc)
		if err != nil {
			return fmt.Errorf("dialect config %s: %w", path, err)
		}
		built = append(built, d)
	}

	for _, d := range built {
		Register(d)
		slog.Debug("registered dialect from config", "path", path, "dialect", d.Name)
	}
	return nil
}

func buildFromConfig(dc dialectConfig) (*Dialect, error) {
	if dc.Name == "" {
		return nil, fmt.Errorf("dialect entry is missing a name")
	}

	baseName := dc.Base
	if baseName == "" {
		baseName = ANSI.Name
	}
	base, ok := Lookup(baseName)
	if !ok {
		return nil, fmt.Errorf("dialect %s: unknown base %q", dc.Name, baseName)
	}

	b := New(dc.Name).Extend(base).BatchSeparators(dc.BatchSeparators...)

	for typeName, words := range dc.Keywords {
		t, err := token.Parse(typeName)
		if err != nil {
			return nil, fmt.Errorf("dialect %s: %w", dc.Name, err)
		}
		b.Keywords(t, words...)
	}

	for _, rc := range dc.Rules {
		t, err := token.Parse(rc.Type)
		if err != nil {
			return nil, fmt.Errorf("dialect %s: rule %q: %w", dc.Name, rc.Pattern, err)
		}
		b.PrependRules(RuleSpec{Pattern: rc.Pattern, Type: t, Opens: rc.Opens})
	}

	return b.Build()
}
