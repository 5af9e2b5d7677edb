package render

import "errors"

var (
	ErrNoScene        = errors.New("render: no scene defined")
	ErrNoCamera       = errors.New("render: no camera defined")
	ErrTreeNotBuilt   = errors.New("render: scene kd-tree has not been built")
	ErrInvalidOptions = errors.New("render: invalid render options")
	ErrInterrupted    = errors.New("render: interrupted while rendering")
)
