package simcast

// Demand multiplier bands by hour of day.
const (
	factorBusinessHours = 1.5 // 09:00-17:59
	factorEvening       = 1.2 // 18:00-21:59
	factorMorningRamp   = 1.1 // 06:00-08:59
	factorOffHours      = 0.6
)

// SeasonalFactor returns the hour-of-day demand multiplier. Incoming work
// peaks during business hours, tapers through the evening, and troughs
// overnight. Pure and total: any integer input is normalized to 0-23.
func SeasonalFactor(hour int) float64 {
	hour = ((hour % 24) + 24) % 24
	switch {
	case hour >= 9 && hour <= 17:
		return factorBusinessHours
	case hour >= 18 && hour <= 21:
		return factorEvening
	case hour >= 6 && hour <= 8:
		return factorMorningRamp
	default:
		return factorOffHours
	}
}
