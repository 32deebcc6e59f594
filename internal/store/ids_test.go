package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDs(t *testing.T) {
	g := SequentialIDs{}
	assert.Equal(t, "member-3", g.Generate(KindMember, 3))
	assert.Equal(t, "bolt-config-1", g.Generate(KindBoltConfiguration, 1))
	assert.Equal(t, "global-loads-12", g.Generate(KindGlobalLoads, 12))
	assert.Equal(t, "connection-2", g.Generate(KindConnection, 2))
}

func TestUUIDIDs_Unique(t *testing.T) {
	g := UUIDIDs{}
	a := g.Generate(KindConnection, 1)
	b := g.Generate(KindConnection, 1)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, len("connection-")+36)
}

func TestGeneratorFor(t *testing.T) {
	assert.IsType(t, UUIDIDs{}, GeneratorFor("uuid"))
	assert.IsType(t, SequentialIDs{}, GeneratorFor("sequential"))
	assert.IsType(t, SequentialIDs{}, GeneratorFor("nonsense"))
}
