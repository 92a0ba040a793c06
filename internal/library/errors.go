package library

import "errors"

var (
	// ErrNoTitle indicates the raw name yielded no usable title.
	ErrNoTitle = errors.New("no usable title in name")
)
