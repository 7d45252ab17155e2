package state

// QualityLevel is an ordinal air quality level derived from a raw sensor
// reading.
type QualityLevel uint8

const (
	QualityClean QualityLevel = iota
	QualityLow
	QualityMedium
	QualityHigh
	QualityVeryHigh
)

// String returns the quality level name.
func (q QualityLevel) String() string {
	switch q {
	case QualityClean:
		return "CLEAN"
	case QualityLow:
		return "LOW"
	case QualityMedium:
		return "MEDIUM"
	case QualityHigh:
		return "HIGH"
	case QualityVeryHigh:
		return "VERY_HIGH"
	default:
		return "UNKNOWN"
	}
}

// ParseQualityLevel maps a raw sensor reading to a quality level.
// Bands are inclusive on their lower bound: 16-35 LOW, 36-55 MEDIUM,
// 56-75 HIGH, above 75 VERY_HIGH, everything below 16 CLEAN.
func ParseQualityLevel(v int) QualityLevel {
	switch {
	case v > 75:
		return QualityVeryHigh
	case v >= 56:
		return QualityHigh
	case v >= 36:
		return QualityMedium
	case v >= 16:
		return QualityLow
	default:
		return QualityClean
	}
}

// WaterContainer is the humidification water container state.
type WaterContainer uint8

const (
	WaterUnknown WaterContainer = iota
	WaterFull
	WaterEmpty
)

// String returns the water container state name.
func (w WaterContainer) String() string {
	switch w {
	case WaterUnknown:
		return "UNKNOWN"
	case WaterFull:
		return "FULL"
	case WaterEmpty:
		return "EMPTY"
	default:
		return "UNKNOWN"
	}
}

// ParseWaterContainer maps the sensor's raw ordinal to a container state.
// Ordinals outside {0,1,2} map to WaterUnknown rather than failing, so a
// noisy sensor byte cannot abort property decoding.
func ParseWaterContainer(v int) WaterContainer {
	switch v {
	case 1:
		return WaterFull
	case 2:
		return WaterEmpty
	default:
		return WaterUnknown
	}
}
