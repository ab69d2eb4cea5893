package access

import (
	"fmt"
	"strings"

	"github.com/pantgram/homidirect/internal/domain"
)

// Authorize checks the principal's role against a route's required set.
// Admins satisfy any requirement; this is the one place the bypass rule
// lives, every other guard composes it through permitted.
func Authorize(p *domain.Principal, required ...domain.Role) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.IsAdmin() {
		return nil
	}
	for _, r := range required {
		if p.Role == r {
			return nil
		}
	}
	names := make([]string, 0, len(required))
	for _, r := range required {
		names = append(names, string(r))
	}
	return fmt.Errorf("%w: requires one of [%s]", domain.ErrForbidden, strings.Join(names, ", "))
}

// permitted grants access to admins and to principals whose id matches one
// of the resource's owners.
func permitted(p *domain.Principal, owners ...int64) error {
	if p == nil {
		return domain.ErrUnauthenticated
	}
	if p.IsAdmin() {
		return nil
	}
	for _, id := range owners {
		if p.ID == id {
			return nil
		}
	}
	return fmt.Errorf("%w: you do not own this resource", domain.ErrForbidden)
}
