package conf

import (
	"fmt"
	"sort"
	"strings"
)

// Profile names selectable via configuration or the --profile flag.
const (
	ProfileConservative = "conservative"
	ProfileStandard     = "standard"
	ProfileLarge        = "large"
)

// Profile is a preset combination of sampling parameters.
type Profile struct {
	MaxSubmissionChars    int
	MaxCommentChars       int
	SamplesPerCategory    int
	OversampleFactor      int
	CommentsPerSubmission int
}

// profiles maps profile names to their preset parameters. The conservative
// profile favors short, quickly reviewable items, large trades review speed
// for coverage.
var profiles = map[string]Profile{
	ProfileConservative: {
		MaxSubmissionChars:    1000,
		MaxCommentChars:       300,
		SamplesPerCategory:    30,
		OversampleFactor:      5,
		CommentsPerSubmission: 3,
	},
	ProfileStandard: {
		MaxSubmissionChars:    2000,
		MaxCommentChars:       500,
		SamplesPerCategory:    50,
		OversampleFactor:      5,
		CommentsPerSubmission: 3,
	},
	ProfileLarge: {
		MaxSubmissionChars:    3000,
		MaxCommentChars:       800,
		SamplesPerCategory:    100,
		OversampleFactor:      5,
		CommentsPerSubmission: 3,
	},
}

// GetProfile returns the named profile.
func GetProfile(name string) (Profile, error) {
	profile, ok := profiles[strings.ToLower(name)]
	if !ok {
		return Profile{}, fmt.Errorf("unknown sampling profile %q, valid profiles: %s", name, strings.Join(ProfileNames(), ", "))
	}
	return profile, nil
}

// ProfileNames returns the valid profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyProfile overwrites the sampling parameters with the named profile's
// presets. The seed is left untouched.
func (s *Settings) ApplyProfile(name string) error {
	profile, err := GetProfile(name)
	if err != nil {
		return err
	}

	s.Sampling.Profile = strings.ToLower(name)
	s.Sampling.MaxSubmissionChars = profile.MaxSubmissionChars
	s.Sampling.MaxCommentChars = profile.MaxCommentChars
	s.Sampling.SamplesPerCategory = profile.SamplesPerCategory
	s.Sampling.OversampleFactor = profile.OversampleFactor
	s.Sampling.CommentsPerSubmission = profile.CommentsPerSubmission

	return nil
}
