package shared

import "fmt"

// CrewQuality grades a crew's experience and feeds skill checks as a flat
// modifier between -2 and +2.
type CrewQuality string

const (
	CrewQualityLandlubber CrewQuality = "LANDLUBBER"
	CrewQualityGreen      CrewQuality = "GREEN"
	CrewQualityAverage    CrewQuality = "AVERAGE"
	CrewQualityTrained    CrewQuality = "TRAINED"
	CrewQualityCrack      CrewQuality = "CRACK"
	CrewQualityOldSalts   CrewQuality = "OLD_SALTS"
)

// AllCrewQualities returns the grades from worst to best.
func AllCrewQualities() []CrewQuality {
	return []CrewQuality{
		CrewQualityLandlubber,
		CrewQualityGreen,
		CrewQualityAverage,
		CrewQualityTrained,
		CrewQualityCrack,
		CrewQualityOldSalts,
	}
}

// IsValid checks the grade is one of the closed set.
func (q CrewQuality) IsValid() bool {
	switch q {
	case CrewQualityLandlubber, CrewQualityGreen, CrewQualityAverage,
		CrewQualityTrained, CrewQualityCrack, CrewQualityOldSalts:
		return true
	default:
		return false
	}
}

// Modifier returns the check modifier for the grade. Landlubber and Green
// crews hinder checks; Crack and Old Salts help them.
func (q CrewQuality) Modifier() int {
	switch q {
	case CrewQualityLandlubber:
		return -2
	case CrewQualityGreen:
		return -1
	case CrewQualityTrained:
		return 1
	case CrewQualityCrack, CrewQualityOldSalts:
		return 2
	default:
		return 0
	}
}

func (q CrewQuality) String() string {
	return string(q)
}

// ParseCrewQuality parses a string into a CrewQuality.
func ParseCrewQuality(s string) (CrewQuality, error) {
	q := CrewQuality(s)
	if !q.IsValid() {
		return "", fmt.Errorf("invalid crew quality: %s", s)
	}
	return q, nil
}
