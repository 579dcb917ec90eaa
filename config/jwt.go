package config

import "time"

// Set by Load so token signing and the auth middleware share one source.
var JWTSecret []byte
var JWTExpiration time.Duration
