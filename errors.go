package utf

import utfcore "github.com/meigma/utf/core"

// Errors re-exported from core.
var (
	// ErrStructural is returned for a bad signature, version or entry size,
	// or an entry reachable more than once.
	ErrStructural = utfcore.ErrStructural

	// ErrRange is returned when an offset or size falls outside its region.
	ErrRange = utfcore.ErrRange

	// ErrMissingResource is returned when an expected entry is absent.
	ErrMissingResource = utfcore.ErrMissingResource

	// ErrUnknownResource is returned for a resource of no known kind.
	ErrUnknownResource = utfcore.ErrUnknownResource
)
