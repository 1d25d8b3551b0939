package scoring_test

import (
	"github.com/kridha-admin/stydev/internal/domain"
	"github.com/kridha-admin/stydev/internal/domain/scoring"
)

func hourglassBody() domain.BodyProfile {
	b := domain.DefaultBodyProfile()
	b.Bust, b.Underbust, b.Waist, b.Hip = 38, 32, 27, 39
	b.ShoulderWidth = 14.0
	return b
}

func pearBody() domain.BodyProfile {
	b := domain.DefaultBodyProfile()
	b.Bust, b.Waist, b.Hip = 34, 28, 40
	b.ShoulderWidth = 13.0
	return b
}

func appleBody() domain.BodyProfile {
	b := domain.DefaultBodyProfile()
	b.Bust, b.Waist, b.Hip = 38, 36, 39
	b.ShoulderWidth = 13.0
	return b
}

func rectangleBody() domain.BodyProfile {
	b := domain.DefaultBodyProfile()
	b.ShoulderWidth = 13.0
	return b
}

// plusBody classifies as a rectangle; its hip is past the plus-size cutoff.
func plusBody() domain.BodyProfile {
	b := domain.DefaultBodyProfile()
	b.Bust, b.Underbust, b.Waist, b.Hip = 44, 38, 38, 46
	b.ShoulderWidth = 16.0
	return b
}

// petiteBody is a 61" rectangle with a short torso (torso score about -2).
func petiteBody() domain.BodyProfile {
	b := rectangleBody()
	b.Height = 61
	b.TorsoLength = 11.5
	return b
}

func tallBody() domain.BodyProfile {
	b := rectangleBody()
	b.Height = 70
	return b
}

// invtBody is the default profile, whose shoulders exceed hip/π by 3.4".
func invtBody() domain.BodyProfile { return domain.DefaultBodyProfile() }

func input(g domain.GarmentProfile, b domain.BodyProfile) scoring.Input {
	return scoring.NewInput(&g, &b, domain.EmptyRuleSet())
}
