package primaryflag

import (
	"fmt"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

// UnsetPolicy controls what happens when a write clears the flag of the
// current primary record.
type UnsetPolicy string

const (
	// PolicyPromote resolves explicit flags on update like on create and hands
	// the flag to the oldest remaining active sibling when the primary loses it.
	PolicyPromote UnsetPolicy = "promote"
	// PolicyAllowOrphan writes an explicit false as-is, even when that leaves
	// the owner without a primary record.
	PolicyAllowOrphan UnsetPolicy = "allow_orphan"
)

func (p UnsetPolicy) String() string { return string(p) }

func (p UnsetPolicy) IsValid() bool {
	return p == PolicyPromote || p == PolicyAllowOrphan
}

// ParseUnsetPolicy parses a configured policy name. An empty name selects
// PolicyPromote.
func ParseUnsetPolicy(s string) (UnsetPolicy, error) {
	if s == "" {
		return PolicyPromote, nil
	}
	p := UnsetPolicy(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: unknown unset policy %q", domain.ErrInvalidArgument, s)
	}
	return p, nil
}
