package driver_test

import "time"

const (
	timeout = time.Second
	tick    = 10 * time.Millisecond
)
