package river

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/statespace/pkg/domain"
)

// MaxEntities is the number of entities a State can track.
const MaxEntities = 64

// Definition describes one river-crossing puzzle.
type Definition struct {
	Name        string     `json:"name" mapstructure:"name" validate:"required"`
	Title       string     `json:"title,omitempty" mapstructure:"title"`
	Description string     `json:"description,omitempty" mapstructure:"description"`
	Carrier     string     `json:"carrier" mapstructure:"carrier" validate:"required"`
	Capacity    int        `json:"capacity" mapstructure:"capacity" validate:"min=1"`
	Entities    []string   `json:"entities" mapstructure:"entities" validate:"required,min=1,max=64,unique,dive,required"`
	Forbidden   [][]string `json:"forbidden,omitempty" mapstructure:"forbidden" validate:"dive,min=1,dive,required"`
}

var validate = validator.New()

// Parse decodes a YAML definition and validates it.
func Parse(data []byte) (*Definition, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing definition: %v", domain.ErrInvalidProblem, err)
	}
	return Decode(raw)
}

// Decode builds a Definition from generic metadata, such as YAML frontmatter.
func Decode(raw map[string]any) (*Definition, error) {
	var def Definition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: decoding definition: %v", domain.ErrInvalidProblem, err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the structural rules of a definition.
func (d *Definition) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: definition %q: %v", domain.ErrInvalidProblem, d.Name, err)
	}
	for i, group := range d.Forbidden {
		for _, name := range group {
			if !slices.Contains(d.Entities, name) {
				return fmt.Errorf("%w: definition %q: forbidden group %d references unknown entity %q",
					domain.ErrInvalidProblem, d.Name, i+1, name)
			}
		}
	}
	return nil
}

// Summary is a one-line human description of the definition.
func (d *Definition) Summary() string {
	title := d.Title
	if title == "" {
		title = d.Name
	}
	return fmt.Sprintf("%s: the %s ferries %d entities, %d at a time", title, d.Carrier, len(d.Entities), d.Capacity)
}

func (d *Definition) mask(names []string) uint64 {
	var m uint64
	for _, name := range names {
		m |= 1 << uint(slices.Index(d.Entities, name))
	}
	return m
}
