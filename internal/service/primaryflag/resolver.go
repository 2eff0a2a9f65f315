package primaryflag

import (
	"fmt"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Decision is the outcome of resolving a requested primary flag.
type Decision struct {
	// Effective is the flag value to persist on the target record.
	Effective bool
	// MustDemoteOthers is set when every other active primary sibling has to
	// be cleared before the target is written.
	MustDemoteOthers bool
}

// Resolve decides the effective primary flag for a record being written into
// a set that already holds existingActiveCount active siblings (the record
// itself excluded). The first record of a set always becomes primary; after
// that only an explicit true request takes the flag, and it takes it from
// everyone else.
func Resolve(existingActiveCount int, requested *bool) (Decision, error) {
	if existingActiveCount < 0 {
		return Decision{}, fmt.Errorf("%w: negative active count %d", domain.ErrInvalidArgument, existingActiveCount)
	}
	if existingActiveCount == 0 {
		return Decision{Effective: true}, nil
	}
	if requested != nil && *requested {
		return Decision{Effective: true, MustDemoteOthers: true}, nil
	}
	return Decision{}, nil
}
