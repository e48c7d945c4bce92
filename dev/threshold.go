package dev

import "machine"

// Dot/dash boundary range the speed pot maps onto, in milliseconds.
const (
	MinThresholdMS = 200
	MaxThresholdMS = 1000
)

// ThresholdSensor derives the dot/dash boundary from the speed
// potentiometer. The raw reading is mapped linearly onto the closed
// [min, max] interval, so a boundary value can never leave the range.
type ThresholdSensor struct {
	adc      machine.ADC
	min, max uint32
}

// NewThresholdSensor creates a sensor mapping full ADC scale onto
// [minMS, maxMS].
func NewThresholdSensor(adc machine.ADC, minMS, maxMS uint32) (*ThresholdSensor, error) {
	if minMS >= maxMS {
		return nil, ErrThresholdRange
	}
	return &ThresholdSensor{adc: adc, min: minMS, max: maxMS}, nil
}

func (t *ThresholdSensor) Configure() {
	t.adc.Configure(machine.ADCConfig{})
}

// ReadThreshold samples the pot and returns the current boundary in
// milliseconds. The conversion busy-waits for a bounded couple of
// microseconds; that is fine from the key interrupt, where it is
// called per classification, but it must not be used from a context
// that cannot stall at all.
func (t *ThresholdSensor) ReadThreshold() uint32 {
	raw := uint32(t.adc.Get()) // 16-bit, left justified
	return t.min + raw*(t.max-t.min)>>16
}
