package dsl

import (
	"fmt"

	"github.com/aretw0/statespace/pkg/domain"
)

// Builder manages the catalogue construction.
type Builder[S domain.State] struct {
	order   []string
	actions map[string]*ActionBuilder[S]
}

// New creates a new catalogue builder.
func New[S domain.State]() *Builder[S] {
	return &Builder[S]{
		actions: make(map[string]*ActionBuilder[S]),
	}
}

// Add declares a new action at the end of the catalogue.
// If the label already exists, it returns the existing builder, so labels are
// unique within a DSL catalogue. Catalogues that need two actions with the
// same label can be assembled from domain.NewAction directly.
func (b *Builder[S]) Add(label string) *ActionBuilder[S] {
	if ab, ok := b.actions[label]; ok {
		return ab
	}
	ab := &ActionBuilder[S]{label: label, builder: b}
	b.actions[label] = ab
	b.order = append(b.order, label)
	return ab
}

// Build compiles the catalogue, in declaration order.
func (b *Builder[S]) Build() ([]domain.Action[S], error) {
	actions := make([]domain.Action[S], 0, len(b.order))
	for _, label := range b.order {
		ab := b.actions[label]
		if label == "" {
			return nil, fmt.Errorf("action %d has an empty label", len(actions))
		}
		if ab.do == nil {
			return nil, fmt.Errorf("action %q has no transformation (missing Do)", label)
		}
		if ab.dos > 1 {
			return nil, fmt.Errorf("action %q declares %d transformations (Do called more than once)", label, ab.dos)
		}
		actions = append(actions, domain.NewAction(label, ab.when, ab.do))
	}
	return actions, nil
}

// MustBuild is Build for catalogues known to be valid at compile time.
func (b *Builder[S]) MustBuild() []domain.Action[S] {
	actions, err := b.Build()
	if err != nil {
		panic(err)
	}
	return actions
}
