package boundedbuffer

import "github.com/pkg/errors"

// ErrInvalidCapacity is returned by New for a non-positive capacity.
var ErrInvalidCapacity = errors.New("boundedbuffer: capacity must be positive")
