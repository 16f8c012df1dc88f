package osmdata

import "errors"

// ErrSeekUnsupported indicates a reader that cannot seek back to the start
// for the second scan pass.
var ErrSeekUnsupported = errors.New("osmdata: reader must support seeking for a two-pass scan")
