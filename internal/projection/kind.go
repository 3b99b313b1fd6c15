package projection

import "fmt"

// Kind identifies which catalog and augmentation step apply to a record.
type Kind string

const (
	KindProject    Kind = "project"
	KindFamily     Kind = "family"
	KindIndividual Kind = "individual"
	KindSample     Kind = "sample"
	KindDataset    Kind = "dataset"
)

// Kinds lists every entity kind in registration order.
var Kinds = []Kind{KindProject, KindFamily, KindIndividual, KindSample, KindDataset}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindProject, KindFamily, KindIndividual, KindSample, KindDataset:
		return true
	}
	return false
}

// GuidKey is the output key of the kind's identifier, e.g. "familyGuid".
func (k Kind) GuidKey() string {
	return string(k) + "Guid"
}

// ParseKind converts a user supplied name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}
