package access

import (
	"fmt"

	"github.com/pantgram/homidirect/internal/domain"
)

// ResolveLandlord decides which landlord a new listing is attributed to.
// Admins may attribute to any landlord id they supply (no existence check on
// the target); everyone else gets their own id, overwriting whatever the
// client sent.
func ResolveLandlord(p *domain.Principal, requested *int64) (int64, error) {
	if p == nil {
		return 0, domain.ErrUnauthenticated
	}
	if p.IsAdmin() {
		if requested != nil {
			return *requested, nil
		}
		return p.ID, nil
	}
	if requested != nil && *requested != p.ID {
		return 0, fmt.Errorf("%w: you may only create listings for yourself", domain.ErrForbidden)
	}
	return p.ID, nil
}
