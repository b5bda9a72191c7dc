package avi

import "errors"

// Load errors are fatal: a container that fails any of these during Load is
// never usable. ErrTruncatedStream and ErrFrameOutOfRange also occur per
// decode call, where they fail only the requested frame.
var (
	ErrInvalidContainer       = errors.New("avi: not a RIFF/AVI container")
	ErrMissingHeader          = errors.New("avi: required header chunk missing")
	ErrUnsupportedCompression = errors.New("avi: compressed video not supported")
	ErrUnsupportedBitDepth    = errors.New("avi: unsupported bit depth")
	ErrTruncatedStream        = errors.New("avi: truncated stream")
	ErrNoFrames               = errors.New("avi: no video frames found")
	ErrFrameOutOfRange        = errors.New("avi: frame index out of range")
)
