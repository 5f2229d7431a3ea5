package utf

import "github.com/meigma/utf/internal/utftype"

// Sentinel errors for container codec failures. Test with errors.Is.
var (
	// ErrStructural is returned for a bad signature, version or entry size,
	// or for an entry reachable more than once.
	ErrStructural = utftype.ErrStructural

	// ErrRange is returned when an offset or size falls outside its region.
	ErrRange = utftype.ErrRange

	// ErrMissingResource is returned when an expected entry is absent or has
	// the wrong kind.
	ErrMissingResource = utftype.ErrMissingResource

	// ErrUnknownResource is returned for a resource that implements neither
	// the file nor the directory contract its kind declares.
	ErrUnknownResource = utftype.ErrUnknownResource
)
