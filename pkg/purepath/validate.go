package purepath

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/MacroPower/pathkit/pkg/pathenc"
	"github.com/MacroPower/pathkit/pkg/patherrors"
)

// Validate reports every validity violation in p under the given dialect:
// reserved characters, "." or ".." components, empty components, and
// components carrying escaped non-text bytes. Violations are aggregated
// rather than reported one at a time. A nil result means p is a valid
// concrete path for the dialect.
//
// Validity is a property, not a precondition; every operation in this
// package accepts invalid paths.
func (p Path) Validate(r Rules) error {
	var errs *multierror.Error

	for _, c := range p.parts {
		switch c {
		case "":
			errs = multierror.Append(errs, patherrors.ErrEmptyComponent)
		case ".", "..":
			errs = multierror.Append(errs, fmt.Errorf("%q: %w", c, patherrors.ErrRelativeComponent))
		default:
			if !pathenc.Valid(c) {
				errs = multierror.Append(errs, fmt.Errorf("%q: %w", c, patherrors.ErrNonTextComponent))
			}
			for _, rn := range c {
				if r.IsReserved(rn) {
					errs = multierror.Append(errs,
						fmt.Errorf("%q contains %q: %w", c, rn, patherrors.ErrReservedCharacter))

					break
				}
			}
		}
	}

	return errs.ErrorOrNil()
}
