package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidPinMode = Error("invalid pin mode")
	ErrThresholdRange = Error("threshold range inverted")
)
