package redis

import "errors"

var (
	// ErrInvalidConnectionURL is returned when the Redis URL cannot be parsed.
	ErrInvalidConnectionURL = errors.New("invalid redis connection URL")
	// ErrConnectionFailed is returned when Redis cannot be reached at startup.
	ErrConnectionFailed = errors.New("failed to connect to redis")
	// ErrCorruptSession is returned when a stored session blob cannot be decoded.
	ErrCorruptSession = errors.New("corrupt session data")
)
