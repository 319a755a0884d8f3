package avltree

import (
	"github.com/pkg/errors"
)

// Errors reported for broken link and direction contracts.
var (
	ErrInvalidLink = errors.New("avltree: invalid link")
	ErrTie         = errors.New("avltree: comparison tie has no direction")
	ErrNotNode     = errors.New("avltree: not a node")
	ErrNotLinked   = errors.New("avltree: nodes are not linked")
)
