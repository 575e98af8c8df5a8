package richtext

import "errors"

// ErrInvalidDocument indicates input that is not a JSON array of nodes.
var ErrInvalidDocument = errors.New("invalid rich-text document")
