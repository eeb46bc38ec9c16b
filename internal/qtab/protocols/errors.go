package protocols

import (
	"errors"
	"fmt"
)

// ErrBadDataStructure is the sentinel identifying the fatal "bad data
// structure" condition (spec §7.2): project! called on a Destabilizer
// whose Rank is not full. Callers use errors.Is against this sentinel to
// distinguish it from the normal not-in-group result; pkg/qtab wraps it
// into a TableauError carrying the same classification.
var ErrBadDataStructure = errors.New("qtab: bad data structure")

func badDataStructure(fn, structure string) error {
	return fmt.Errorf("%w: %s called on non-full-rank %s", ErrBadDataStructure, fn, structure)
}
