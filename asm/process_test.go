package asm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessRegistry(t *testing.T) {
	assert := assert.New(t)

	pr := &ProcessRegistry{}

	assert.NoError(pr.Register("alpha", 0))
	assert.NoError(pr.Register("worker.b", 10))
	assert.NoError(pr.Register("beta", 4))
	assert.NoError(pr.Register("worker.a", 6))
	assert.NoError(pr.Register("worker.c", 2))

	assert.Equal(3, pr.Count())

	pr.Finalize()

	procs := pr.Processes()
	assert.Equal("worker", procs[1].Name)
	assert.True(procs[1].Split)
	assert.Equal([]Slot{{"c", 2}, {"a", 6}, {"b", 10}}, procs[1].Slots)

	assert.Equal([]int{0, 2, 6, 10, 4}, pr.Starts())
	assert.Equal(3, pr.CycleLength())
	assert.Equal([]int{
		0, 2, 4,
		0, 6, 4,
		0, 10, 4,
	}, pr.Sequence())

	assert.NoError(pr.CheckCapacity())
}

func TestProcessRegistryDuplicate(t *testing.T) {
	assert := assert.New(t)

	pr := &ProcessRegistry{}

	assert.NoError(pr.Register("alpha", 0))
	assert.NoError(pr.Register("worker.a", 1))

	table := []string{
		"alpha",
		"alpha.x",
		"worker.a",
		"worker",
	}

	for _, name := range table {
		err := pr.Register(name, 2)
		assert.ErrorIs(err, ErrDuplicateProcess, name)
	}

	assert.Equal(2, pr.Count())
}

func TestProcessRegistryCapacity(t *testing.T) {
	assert := assert.New(t)

	build := func(slots int) *ProcessRegistry {
		pr := &ProcessRegistry{}
		for n := range slots {
			assert.NoError(pr.Register(fmt.Sprintf("big.s%d", n), n))
		}
		for n := range 6 {
			assert.NoError(pr.Register(fmt.Sprintf("idle%d", n), slots+n))
		}
		pr.Finalize()
		return pr
	}

	pr := build(73)
	assert.NoError(pr.CheckCapacity())
	assert.Equal(SEQUENCE_DEPTH, len(pr.Sequence()))

	pr = build(74)
	err := pr.CheckCapacity()
	assert.ErrorIs(err, ErrSequenceCapacity)

	var el *ErrLimit
	assert.ErrorAs(err, &el)
	assert.Equal(7*74, el.Value)
}
