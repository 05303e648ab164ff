package river

import (
	_ "embed"
	"fmt"

	"github.com/aretw0/statespace/pkg/domain"
)

//go:embed fox_goose_beans.yaml
var foxGooseBeans []byte

// Puzzle is a validated definition together with its compiled action catalogue.
type Puzzle struct {
	def     *Definition
	actions []domain.Action[State]
}

// New compiles a definition into a searchable puzzle.
func New(def *Definition) (*Puzzle, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: nil definition", domain.ErrInvalidProblem)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &Puzzle{def: def, actions: buildActions(def)}, nil
}

// Default returns the classic Fox, Goose and Bag of Beans puzzle.
func Default() *Puzzle {
	def, err := Parse(foxGooseBeans)
	if err != nil {
		panic(fmt.Sprintf("river: embedded definition is invalid: %v", err))
	}
	p, err := New(def)
	if err != nil {
		panic(fmt.Sprintf("river: embedded definition is invalid: %v", err))
	}
	return p
}

func (p *Puzzle) Name() string            { return p.def.Name }
func (p *Puzzle) Summary() string         { return p.def.Summary() }
func (p *Puzzle) Definition() *Definition { return p.def }

// Actions returns the catalogue: both crossings, then pickup and drop per entity.
func (p *Puzzle) Actions() []domain.Action[State] {
	return p.actions
}

// Start has every entity and the carrier on the left bank, nothing carried.
func (p *Puzzle) Start() State {
	return State{Initials: initials(p.def.Entities), Carrier: Left}
}

// Target has every entity and the carrier on the right bank, nothing carried.
func (p *Puzzle) Target() State {
	return State{
		Initials: initials(p.def.Entities),
		Carrier:  Right,
		OnRight:  p.def.mask(p.def.Entities),
	}
}

// Goal accepts only the target state.
func (p *Puzzle) Goal() domain.Goal[State] {
	return domain.Equals(p.Target())
}
