package data

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/progrog/roguelike/internal/rng"
	"gopkg.in/yaml.v3"
)

// MobTemplate holds static data for a creature type loaded from YAML.
type MobTemplate struct {
	Name   string `yaml:"name"`
	Glyph  string `yaml:"glyph"`
	HP     int    `yaml:"hp"`
	MP     int    `yaml:"mp"`
	Sight  int    `yaml:"sight"`
	Weight int    `yaml:"weight"` // relative spawn frequency
}

// Rune returns the glyph as a single rune.
func (t *MobTemplate) Rune() rune {
	r, _ := utf8.DecodeRuneInString(t.Glyph)
	return r
}

type mobListFile struct {
	Mobs []MobTemplate `yaml:"mobs"`
}

// MobTable holds all mob templates in file order.
type MobTable struct {
	templates   []*MobTemplate
	byName      map[string]*MobTemplate
	totalWeight int
}

// LoadMobTable loads mob templates from a YAML file.
func LoadMobTable(path string) (*MobTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mob_list: %w", err)
	}
	t, err := ParseMobTable(raw)
	if err != nil {
		return nil, fmt.Errorf("parse mob_list %s: %w", path, err)
	}
	return t, nil
}

// ParseMobTable decodes and validates YAML mob templates.
func ParseMobTable(raw []byte) (*MobTable, error) {
	var f mobListFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if len(f.Mobs) == 0 {
		return nil, fmt.Errorf("no mobs defined")
	}
	t := &MobTable{
		templates: make([]*MobTemplate, 0, len(f.Mobs)),
		byName:    make(map[string]*MobTemplate, len(f.Mobs)),
	}
	for i := range f.Mobs {
		m := &f.Mobs[i]
		if m.Name == "" {
			return nil, fmt.Errorf("mob #%d has no name", i)
		}
		if utf8.RuneCountInString(m.Glyph) != 1 {
			return nil, fmt.Errorf("mob %q: glyph must be exactly one character, got %q", m.Name, m.Glyph)
		}
		if m.HP <= 0 {
			return nil, fmt.Errorf("mob %q: hp must be positive", m.Name)
		}
		if m.Weight <= 0 {
			m.Weight = 1
		}
		t.templates = append(t.templates, m)
		t.byName[m.Name] = m
		t.totalWeight += m.Weight
	}
	return t, nil
}

// Get returns a template by name, or nil if not found.
func (t *MobTable) Get(name string) *MobTemplate {
	return t.byName[name]
}

// Count returns the number of loaded templates.
func (t *MobTable) Count() int {
	return len(t.templates)
}

// Pick draws a template with probability proportional to its weight.
func (t *MobTable) Pick(src rng.Source) *MobTemplate {
	roll := src.Range(t.totalWeight)
	for _, m := range t.templates {
		if roll < m.Weight {
			return m
		}
		roll -= m.Weight
	}
	return t.templates[len(t.templates)-1]
}
