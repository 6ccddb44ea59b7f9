package shipment

import "errors"

// ErrUnknownColumn rejects filter columns outside the fixed allow-list.
var ErrUnknownColumn = errors.New("unknown filter column")

// Per-endpoint default page sizes.
const (
	defaultListLimit     = 10
	defaultRecentLimit   = 20
	defaultFilterLimit   = 20
	defaultAdvancedLimit = 20
	defaultLookupLimit   = 50
)
