package list

import "errors"

// ErrInvariant signals a violated structural list invariant, as reported by Check.
var ErrInvariant = errors.New("list: invariant violated")
