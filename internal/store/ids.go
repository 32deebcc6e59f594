package store

import (
	"fmt"

	"github.com/google/uuid"
)

// Kind names an entity collection
type Kind string

const (
	KindMember            Kind = "member"
	KindBoltConfiguration Kind = "bolt-config"
	KindGlobalLoads       Kind = "global-loads"
	KindConnection        Kind = "connection"
)

// IDGenerator produces the identifier of a new entity. seq is the per-kind
// sequence number assigned by the store, starting at 1.
type IDGenerator interface {
	Generate(kind Kind, seq int) string
}

// SequentialIDs generates readable identifiers such as "member-3".
// It is the default generator.
type SequentialIDs struct{}

// Generate returns "<kind>-<seq>"
func (SequentialIDs) Generate(kind Kind, seq int) string {
	return fmt.Sprintf("%s-%d", kind, seq)
}

// UUIDIDs generates time-sortable identifiers such as
// "member-01890a5d-ac96-774b-bcce-b302099a8057".
//
// Uses github.com/google/uuid UUIDv7, so identifiers from one store sort by
// creation time.
type UUIDIDs struct{}

// Generate returns "<kind>-<uuidv7>". Panics if UUID generation fails
// (should never happen in practice).
func (UUIDIDs) Generate(kind Kind, _ int) string {
	return fmt.Sprintf("%s-%s", kind, uuid.Must(uuid.NewV7()))
}

// GeneratorFor returns the generator for a configured scheme name
// ("sequential" or "uuid"); unknown names select sequential.
func GeneratorFor(scheme string) IDGenerator {
	if scheme == "uuid" {
		return UUIDIDs{}
	}
	return SequentialIDs{}
}
