package dsl

import (
	"errors"
	"strconv"
	"testing"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ value int }

func (c counter) String() string { return strconv.Itoa(c.value) }

func TestBuilder_PreservesDeclarationOrder(t *testing.T) {
	b := New[counter]()
	b.Add("double").Do(func(c counter) counter { return counter{c.value * 2} }).
		Add("inc").Do(func(c counter) counter { return counter{c.value + 1} })
	b.Add("dec").Do(func(c counter) counter { return counter{c.value - 1} })

	actions, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"double", "inc", "dec"}, domain.Labels(actions))
}

func TestBuilder_AddReturnsExistingBuilder(t *testing.T) {
	b := New[counter]()
	first := b.Add("inc")
	second := b.Add("inc")
	assert.Same(t, first, second)

	first.Do(func(c counter) counter { return counter{c.value + 1} })
	actions, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, actions, 1)
}

func TestBuilder_RejectsSecondDo(t *testing.T) {
	b := New[counter]()
	b.Add("step").Do(func(c counter) counter { return counter{c.value + 1} })
	b.Add("step").Do(func(c counter) counter { return counter{c.value + 10} })

	_, err := b.Build()
	assert.ErrorContains(t, err, `"step" declares 2 transformations`)
	assert.Panics(t, func() { b.MustBuild() })
}

func TestBuilder_MissingDo(t *testing.T) {
	b := New[counter]()
	b.Add("noop")

	_, err := b.Build()
	assert.ErrorContains(t, err, `"noop"`)
	assert.Panics(t, func() { b.MustBuild() })
}

func TestActionBuilder_WhenCombinesPreconditions(t *testing.T) {
	b := New[counter]()
	b.Add("inc").
		When(func(c counter) bool { return c.value >= 0 }).
		When(func(c counter) bool { return c.value < 3 }).
		Do(func(c counter) counter { return counter{c.value + 1} })

	inc := b.MustBuild()[0]
	assert.True(t, inc.Applicable(counter{0}))
	assert.False(t, inc.Applicable(counter{-1}))
	assert.False(t, inc.Applicable(counter{3}))

	next, err := inc.Apply(counter{2})
	require.NoError(t, err)
	assert.Equal(t, counter{3}, next)

	_, err = inc.Apply(counter{3})
	assert.True(t, errors.Is(err, domain.ErrPreconditionViolation))
}
