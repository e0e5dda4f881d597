package intent

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// Catalogue holds the phrase lists the detector matches against.
type Catalogue struct {
	CompletionPhrases     []string `yaml:"completion_phrases"`
	CalendarKeywords      []string `yaml:"calendar_keywords"`
	CalendarConfirmations []string `yaml:"calendar_confirmations"`
	NameStopWords         []string `yaml:"name_stop_words"`
}

// DefaultCatalogue returns the catalogue compiled into the binary.
func DefaultCatalogue() Catalogue {
	cat, err := parseCatalogue(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("intent: embedded rules.yaml is invalid: %v", err))
	}
	return cat
}

// LoadCatalogue reads a YAML catalogue from path. Lists missing from the file
// keep their default values.
func LoadCatalogue(path string) (Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	override, err := parseCatalogue(data)
	if err != nil {
		return Catalogue{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}

	return DefaultCatalogue().merge(override), nil
}

func parseCatalogue(data []byte) (Catalogue, error) {
	var cat Catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return Catalogue{}, err
	}
	return cat.normalize(), nil
}

func (c Catalogue) merge(o Catalogue) Catalogue {
	if len(o.CompletionPhrases) > 0 {
		c.CompletionPhrases = o.CompletionPhrases
	}
	if len(o.CalendarKeywords) > 0 {
		c.CalendarKeywords = o.CalendarKeywords
	}
	if len(o.CalendarConfirmations) > 0 {
		c.CalendarConfirmations = o.CalendarConfirmations
	}
	if len(o.NameStopWords) > 0 {
		c.NameStopWords = o.NameStopWords
	}
	return c
}

// normalize drops blank entries. Case is kept so the file stays readable;
// matching lowercases at compile time.
func (c Catalogue) normalize() Catalogue {
	c.CompletionPhrases = compact(c.CompletionPhrases)
	c.CalendarKeywords = compact(c.CalendarKeywords)
	c.CalendarConfirmations = compact(c.CalendarConfirmations)
	c.NameStopWords = compact(c.NameStopWords)
	return c
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// containsAny reports whether lowered contains one of the (already lowercased) phrases.
func containsAny(lowered string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			return true
		}
	}
	return false
}
