package hal

import "math"

// axisToInt16 maps a [-1, 1] axis reading onto the signed 16-bit stick range.
func axisToInt16(v float64) int16 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= 1:
		return math.MaxInt16
	case v <= -1:
		return math.MinInt16
	case v < 0:
		return int16(v * 32768)
	default:
		return int16(v * 32767)
	}
}

// triggerToUint8 maps a [0, 1] trigger reading onto 0..255.
func triggerToUint8(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 1:
		return math.MaxUint8
	default:
		return uint8(v*255 + 0.5)
	}
}

// motorMagnitude maps a motor speed onto a [0, 1] vibration magnitude.
func motorMagnitude(speed uint16) float64 {
	return float64(speed) / math.MaxUint16
}
