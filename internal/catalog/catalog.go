package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultData []byte

// DefaultLanguage is used when a country has no language table entry.
const DefaultLanguage = "English (US)"

// Persona is the writer card shown next to a market's content.
type Persona struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Initials string `yaml:"initials"`
	Color    string `yaml:"color"`
}

// Guidance is the cultural considerations table for one market.
type Guidance struct {
	Title    string   `yaml:"title"`
	Summary  string   `yaml:"summary"`
	Warnings []string `yaml:"warnings"`
}

// Country describes a target market.
type Country struct {
	Code         string   `yaml:"code"`
	Name         string   `yaml:"name"`
	Flag         string   `yaml:"flag"`
	Gradient     string   `yaml:"gradient"`
	Byline       string   `yaml:"byline"`
	Persona      Persona  `yaml:"persona"`
	RegionalTone string   `yaml:"tone"`
	Languages    []string `yaml:"languages"`
	Guidance     Guidance `yaml:"guidance"`
}

// Known reports whether the country came from the catalog rather than a fallback.
func (c Country) Known() bool {
	return c.Flag != ""
}

// ContentType is a selectable asset type. Disabled parents only group children.
type ContentType struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	DisplayName string        `yaml:"display"`
	ChatName    string        `yaml:"chat"`
	Parent      string        `yaml:"-"`
	Disabled    bool          `yaml:"disabled"`
	Children    []ContentType `yaml:"children"`
}

// Catalog holds the markets, content types and language tables.
type Catalog struct {
	DefaultGradient string            `yaml:"default_gradient"`
	DefaultTone     string            `yaml:"default_tone"`
	DefaultByline   string            `yaml:"default_byline"`
	Countries       []Country         `yaml:"countries"`
	ContentTypes    []ContentType     `yaml:"content_types"`
	English         []string          `yaml:"english"`
	Languages       map[string]string `yaml:"language_codes"`

	countries    map[string]Country
	contentTypes map[string]ContentType
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog, parsed once.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultData)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses a catalog document and builds its lookup indexes.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Countries) == 0 {
		return nil, fmt.Errorf("catalog has no countries")
	}

	c.countries = make(map[string]Country, len(c.Countries))
	for _, country := range c.Countries {
		if country.Code == "" {
			return nil, fmt.Errorf("catalog country %q has no code", country.Name)
		}
		c.countries[strings.ToUpper(country.Code)] = country
	}

	c.contentTypes = make(map[string]ContentType)
	for i := range c.ContentTypes {
		parent := &c.ContentTypes[i]
		for j := range parent.Children {
			parent.Children[j].Parent = parent.ID
			c.contentTypes[parent.Children[j].ID] = parent.Children[j]
		}
		c.contentTypes[parent.ID] = *parent
	}
	if c.Languages == nil {
		c.Languages = map[string]string{}
	}
	return &c, nil
}

// Country looks up a market by ISO code.
func (c *Catalog) Country(code string) (Country, bool) {
	country, ok := c.countries[strings.ToUpper(code)]
	return country, ok
}

// CountryOrFallback never fails: unknown codes get a country named after the
// code with the generic tone and byline.
func (c *Catalog) CountryOrFallback(code string) Country {
	if country, ok := c.Country(code); ok {
		return country
	}
	return Country{
		Code:         code,
		Name:         code,
		Gradient:     c.DefaultGradient,
		Byline:       c.DefaultByline,
		RegionalTone: c.DefaultTone,
		Languages:    []string{DefaultLanguage},
	}
}

// CountryName returns the display name, or the code itself when unknown.
func (c *Catalog) CountryName(code string) string {
	return c.CountryOrFallback(code).Name
}

// ContentType looks up a content type, including children.
func (c *Catalog) ContentType(id string) (ContentType, bool) {
	ct, ok := c.contentTypes[id]
	return ct, ok
}

// DisplayName returns the heading name of a content type, or id when unknown.
func (c *Catalog) DisplayName(id string) string {
	if ct, ok := c.ContentType(id); ok {
		return ct.DisplayName
	}
	return id
}

// ChatName returns the lower-case name used in assistant replies.
func (c *Catalog) ChatName(id string) string {
	if ct, ok := c.ContentType(id); ok {
		return ct.ChatName
	}
	return "content"
}

// Selectable lists every content type a user can pick, children included.
func (c *Catalog) Selectable() []ContentType {
	var out []ContentType
	for _, ct := range c.ContentTypes {
		if !ct.Disabled {
			out = append(out, ct)
		}
		for _, child := range ct.Children {
			if !child.Disabled {
				out = append(out, child)
			}
		}
	}
	return out
}

// LanguagesFor lists the languages offered for a market.
func (c *Catalog) LanguagesFor(code string) []string {
	if country, ok := c.Country(code); ok && len(country.Languages) > 0 {
		return country.Languages
	}
	return []string{DefaultLanguage}
}

// IsEnglish reports whether lang is one of the English variants.
func (c *Catalog) IsEnglish(lang string) bool {
	if lang == "" {
		return true
	}
	for _, e := range c.English {
		if e == lang {
			return true
		}
	}
	return false
}

// LanguageCode maps a display language to its translation code, "en" by default.
func (c *Catalog) LanguageCode(lang string) string {
	if code, ok := c.Languages[lang]; ok {
		return code
	}
	return "en"
}

// Guidance returns the market's cultural considerations, US when unknown.
func (c *Catalog) Guidance(code string) Guidance {
	if country, ok := c.Country(code); ok {
		return country.Guidance
	}
	us, _ := c.Country("US")
	return us.Guidance
}

// Gradient returns the flag gradient for a market.
func (c *Catalog) Gradient(code string) string {
	if country, ok := c.Country(code); ok && country.Gradient != "" {
		return country.Gradient
	}
	return c.DefaultGradient
}

// RegionalTone returns the tone line used in generation briefs.
func (c *Catalog) RegionalTone(code string) string {
	if country, ok := c.Country(code); ok {
		return country.RegionalTone
	}
	return c.DefaultTone
}
