package crops

import (
	"fmt"
	"strings"
)

// Supported display languages.
const (
	LangEnglish = "en"
	LangHindi   = "hi"
)

// RenderReason turns a reason code into display text for the given
// language. Unknown languages fall back to English.
func RenderReason(r Reason, p Profile, q Query, season Season, lang string) string {
	if lang == LangHindi {
		return renderHindi(r, q, season)
	}
	switch r {
	case ReasonSoil:
		return fmt.Sprintf("Suits %s soil", p.soilLabel(q.Soil))
	case ReasonTemperature:
		return fmt.Sprintf("Ideal temperature (%.0f-%.0f°C)", p.MinTemp, p.MaxTemp)
	case ReasonHumidity:
		return fmt.Sprintf("Suitable humidity (%.0f-%.0f%%)", p.MinHumidity, p.MaxHumidity)
	case ReasonRegion:
		return fmt.Sprintf("Popular in %s", q.Region)
	case ReasonSeason:
		return fmt.Sprintf("Good for %s season", season)
	case ReasonQuickHarvest:
		return "Quick harvest (30-60 days)"
	}
	return string(r)
}

func renderHindi(r Reason, q Query, season Season) string {
	switch r {
	case ReasonSoil:
		return "मिट्टी के लिए उपयुक्त"
	case ReasonTemperature:
		return "आदर्श तापमान"
	case ReasonHumidity:
		return "उपयुक्त नमी"
	case ReasonRegion:
		return fmt.Sprintf("%s में लोकप्रिय", q.Region)
	case ReasonSeason:
		return fmt.Sprintf("%s मौसम की फसल", season)
	case ReasonQuickHarvest:
		return "जल्दी तैयार (30-60 दिन)"
	}
	return string(r)
}

// RenderReasons renders every reason of s in order.
func RenderReasons(s Scored, q Query, season Season, lang string) []string {
	out := make([]string, 0, len(s.Reasons))
	for _, r := range s.Reasons {
		out = append(out, RenderReason(r, s.Profile, q, season, lang))
	}
	return out
}

// soilLabel returns the catalog spelling of the queried soil type.
func (p Profile) soilLabel(soil string) string {
	soil = strings.TrimSpace(soil)
	for _, s := range p.Soils {
		if strings.EqualFold(s, soil) {
			return s
		}
	}
	return soil
}
