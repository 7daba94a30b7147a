package reaper

import (
	"errors"
	"fmt"
)

// ErrSourceLengthUnavailable is returned by HostPcmSource.Length for
// sources without a finite length, such as loopable synth sources.
var ErrSourceLengthUnavailable = errors.New("PCM source reports no length")

// RegistrationError means the host refused a plugin_register call. The
// environment decides this, not the caller, so it surfaces as an error
// rather than a panic.
type RegistrationError struct {
	Key string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("couldn't register %q with the host", e.Key)
}

// CreationError means the host declined to create an object, such as a PCM
// sink for an unwritable path.
type CreationError struct {
	What string
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("host couldn't create %s", e.What)
}
