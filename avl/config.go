package avl

import (
	"fmt"

	"github.com/npillmayer/containers"
)

// Config configures an AVL tree.
type Config[K any] struct {
	// Compare orders keys. It returns a negative number if a < b, a positive
	// number if a > b and 0 for equal keys.
	Compare func(a, b K) int
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: key comparator is required", ErrInvalidConfig)
	}
	return nil
}

// OrderedConfig returns a configuration using the natural order of K.
func OrderedConfig[K containers.Ordered]() Config[K] {
	return Config[K]{Compare: containers.Compare[K]}
}
