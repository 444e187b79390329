package site

import (
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFields are the fields every new configuration starts with, in order.
var DefaultFields = []string{"price", "currency", "stock_status", "stock_quantity", "product_name"}

// newFieldTemplate is tried with 1, 2, 3... until an unused name is found.
const newFieldTemplate = "field_%d"

// Entry is a single field → selector pair.
type Entry struct {
	Field    string
	Selector string
}

// SelectorMap is an ordered mapping of field names to CSS selectors.
//
// Field names are unique and non-empty. Renaming a field keeps its position
// and the relative order of every other field; new fields are appended.
// Operations that would break either rule are rejected and leave the map
// unchanged.
type SelectorMap struct {
	m *orderedmap.OrderedMap[string, string]
}

// NewSelectorMap returns an empty map.
func NewSelectorMap() *SelectorMap {
	return &SelectorMap{m: orderedmap.New[string, string]()}
}

// DefaultSelectorMap returns a map holding DefaultFields with empty selectors.
func DefaultSelectorMap() *SelectorMap {
	s := NewSelectorMap()
	for _, f := range DefaultFields {
		s.m.Set(f, "")
	}
	return s
}

// FromEntries builds a map from entries in order. Empty or repeated field
// names are rejected.
func FromEntries(entries []Entry) (*SelectorMap, error) {
	s := NewSelectorMap()
	for _, e := range entries {
		field := strings.TrimSpace(e.Field)
		if field == "" {
			return nil, Invalid("field name", ErrEmpty)
		}
		if s.Has(field) {
			return nil, Invalid(fmt.Sprintf("field %q:", field), ErrDuplicateField)
		}
		s.m.Set(field, e.Selector)
	}
	return s, nil
}

func (s *SelectorMap) lazy() {
	if s.m == nil {
		s.m = orderedmap.New[string, string]()
	}
}

// Len returns the number of fields.
func (s *SelectorMap) Len() int {
	if s == nil || s.m == nil {
		return 0
	}
	return s.m.Len()
}

// Has reports whether field exists.
func (s *SelectorMap) Has(field string) bool {
	if s == nil || s.m == nil {
		return false
	}
	_, ok := s.m.Get(field)
	return ok
}

// Get returns the selector for field.
func (s *SelectorMap) Get(field string) (string, bool) {
	if s == nil || s.m == nil {
		return "", false
	}
	return s.m.Get(field)
}

// Keys returns field names in order.
func (s *SelectorMap) Keys() []string {
	keys := make([]string, 0, s.Len())
	if s.Len() == 0 {
		return keys
	}
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Entries returns field/selector pairs in order.
func (s *SelectorMap) Entries() []Entry {
	entries := make([]Entry, 0, s.Len())
	if s.Len() == 0 {
		return entries
	}
	for p := s.m.Oldest(); p != nil; p = p.Next() {
		entries = append(entries, Entry{Field: p.Key, Selector: p.Value})
	}
	return entries
}

// IndexOf returns the position of field, or -1.
func (s *SelectorMap) IndexOf(field string) int {
	for i, k := range s.Keys() {
		if k == field {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy.
func (s *SelectorMap) Clone() *SelectorMap {
	c := NewSelectorMap()
	for _, e := range s.Entries() {
		c.m.Set(e.Field, e.Selector)
	}
	return c
}

// Equal reports whether both maps hold the same entries in the same order.
func (s *SelectorMap) Equal(other *SelectorMap) bool {
	a, b := s.Entries(), other.Entries()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Rename changes oldField to newField in place. The new name is trimmed; it
// must be non-empty and must not name a different existing field. Renaming a
// field to itself is a no-op.
func (s *SelectorMap) Rename(oldField, newField string) error {
	newField = strings.TrimSpace(newField)
	if newField == "" {
		return Invalid("field name", ErrEmpty)
	}
	value, ok := s.Get(oldField)
	if !ok {
		return Invalid(fmt.Sprintf("field %q:", oldField), ErrUnknownField)
	}
	if newField == oldField {
		return nil
	}
	if s.Has(newField) {
		return Invalid(fmt.Sprintf("field %q:", newField), ErrDuplicateField)
	}

	// Append under the new name, slot it in front of the old entry, then drop
	// the old entry. Every other element keeps its neighbours.
	s.m.Set(newField, value)
	if err := s.m.MoveBefore(newField, oldField); err != nil {
		s.m.Delete(newField)
		return fmt.Errorf("repositioning %q: %w", newField, err)
	}
	s.m.Delete(oldField)
	return nil
}

// SetValue replaces the selector of an existing field.
func (s *SelectorMap) SetValue(field, selector string) error {
	if !s.Has(field) {
		return Invalid(fmt.Sprintf("field %q:", field), ErrUnknownField)
	}
	s.m.Set(field, selector)
	return nil
}

// Remove deletes field.
func (s *SelectorMap) Remove(field string) error {
	if !s.Has(field) {
		return Invalid(fmt.Sprintf("field %q:", field), ErrUnknownField)
	}
	s.m.Delete(field)
	return nil
}

// Add appends a new field with an empty selector and returns its name.
func (s *SelectorMap) Add() string {
	s.lazy()
	name := s.nextFieldName()
	s.m.Set(name, "")
	return name
}

// Put sets field to selector, appending it when missing. Used for seeding.
func (s *SelectorMap) Put(field, selector string) error {
	field = strings.TrimSpace(field)
	if field == "" {
		return Invalid("field name", ErrEmpty)
	}
	s.lazy()
	s.m.Set(field, selector)
	return nil
}

func (s *SelectorMap) nextFieldName() string {
	for i := 1; ; i++ {
		name := fmt.Sprintf(newFieldTemplate, i)
		if !s.Has(name) {
			return name
		}
	}
}

// MarshalJSON encodes the map as a JSON object in field order.
func (s *SelectorMap) MarshalJSON() ([]byte, error) {
	if s.Len() == 0 {
		return []byte("{}"), nil
	}
	return s.m.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping key order.
func (s *SelectorMap) UnmarshalJSON(data []byte) error {
	m := orderedmap.New[string, string]()
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("decoding selectors: %w", err)
	}
	for p := m.Oldest(); p != nil; p = p.Next() {
		if strings.TrimSpace(p.Key) == "" {
			return Invalid("field name", ErrEmpty)
		}
	}
	s.m = m
	return nil
}

// MarshalYAML encodes the map as a YAML mapping in field order.
func (s *SelectorMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range s.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Field},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Selector},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, keeping key order.
func (s *SelectorMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: selectors must be a mapping", value.Line)
	}
	entries := make([]Entry, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: selector for %q must be a string", v.Line, k.Value)
		}
		selector := v.Value
		if v.Tag == "!!null" {
			selector = ""
		}
		entries = append(entries, Entry{Field: k.Value, Selector: selector})
	}
	parsed, err := FromEntries(entries)
	if err != nil {
		return err
	}
	s.m = parsed.m
	return nil
}
