// Agricultural seasons of the Indian cropping calendar.
package crops

import "time"

// Season is one of the three cropping seasons.
type Season string

// Season constants.
const (
	Kharif Season = "Kharif" // monsoon-sown, June to October
	Rabi   Season = "Rabi"   // winter-sown, November to March
	Zaid   Season = "Zaid"   // short summer season, April and May

	// YearRound marks a crop that can be sown in any season.
	YearRound Season = "Year-round"
)

// SeasonForMonth returns the cropping season for a calendar month.
func SeasonForMonth(m time.Month) Season {
	switch {
	case m >= time.June && m <= time.October:
		return Kharif
	case m >= time.November || m <= time.March:
		return Rabi
	default:
		return Zaid
	}
}

// CurrentSeason returns the season in effect at t.
func CurrentSeason(t time.Time) Season {
	return SeasonForMonth(t.Month())
}
