package events

import "errors"

// ErrBrokerClosed is returned when publishing after Close
var ErrBrokerClosed = errors.New("event broker is closed")
