package projection

import (
	"errors"
	"fmt"
)

// ErrConfig marks catalog and projector configuration errors. They are
// detected when a Catalog or Projector is built and never at request time.
var ErrConfig = errors.New("projection config")

var (
	ErrUnknownKind       = fmt.Errorf("%w: unknown entity kind", ErrConfig)
	ErrUnregisteredKind  = fmt.Errorf("%w: entity kind not registered", ErrConfig)
	ErrDuplicateKind     = fmt.Errorf("%w: entity kind registered twice", ErrConfig)
	ErrDuplicateKey      = fmt.Errorf("%w: duplicate output key", ErrConfig)
	ErrMissingIdentifier = fmt.Errorf("%w: catalog has no public guid field", ErrConfig)
	ErrEmptyPath         = fmt.Errorf("%w: empty field path", ErrConfig)
)
