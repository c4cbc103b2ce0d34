package smc

// TemperatureUnit selects the presentation unit for temperature accessors.
// The wire format is always degrees Celsius; the unit never affects encoding.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
	Kelvin
)

func (u TemperatureUnit) String() string {
	switch u {
	case Celsius:
		return "celsius"
	case Fahrenheit:
		return "fahrenheit"
	case Kelvin:
		return "kelvin"
	default:
		return "unknown"
	}
}

// ConvertTemperature converts a Celsius value to the given unit.
func ConvertTemperature(celsius float64, unit TemperatureUnit) float64 {
	switch unit {
	case Fahrenheit:
		return celsius*1.8 + 32
	case Kelvin:
		return celsius + 273.15
	default:
		return celsius
	}
}
