package projection

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// catalogFile is the YAML form of a Catalog.
type catalogFile struct {
	Version string                `yaml:"version,omitempty"`
	Kinds   map[string]tierFields `yaml:"kinds"`
}

type tierFields struct {
	Public     []fieldEntry `yaml:"public"`
	Privileged []fieldEntry `yaml:"privileged,omitempty"`
}

// fieldEntry accepts either a dotted path ("project.guid") or a mapping
// {path: project.guid, key: project_guid}.
type fieldEntry struct {
	Path string `yaml:"path"`
	Key  string `yaml:"key,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for fieldEntry.
func (e *fieldEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Path)

	case yaml.MappingNode:
		type plain fieldEntry
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*e = fieldEntry(p)
		return nil

	default:
		return fmt.Errorf("line %d: expected a path or {path, key}, got %v", node.Line, node.Kind)
	}
}

func (e fieldEntry) spec() (FieldSpec, error) {
	steps, err := ParsePath(e.Path)
	if err != nil {
		return FieldSpec{}, err
	}
	return FieldSpec{Path: steps, Key: e.Key}, nil
}

// ParseCatalog parses and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("%w: parse catalog YAML: %w", ErrConfig, err)
	}

	reg := NewRegistry()
	for name, tiers := range cf.Kinds {
		kind, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		public, err := toSpecs(tiers.Public)
		if err != nil {
			return nil, fmt.Errorf("%s public fields: %w", kind, err)
		}
		privileged, err := toSpecs(tiers.Privileged)
		if err != nil {
			return nil, fmt.Errorf("%s privileged fields: %w", kind, err)
		}
		if err := reg.Register(kind, public, privileged); err != nil {
			return nil, err
		}
	}
	return reg.Build()
}

// LoadCatalogFile reads and parses a YAML catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// DefaultCatalog returns the compiled-in catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

func toSpecs(entries []fieldEntry) ([]FieldSpec, error) {
	specs := make([]FieldSpec, 0, len(entries))
	for _, e := range entries {
		s, err := e.spec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}
