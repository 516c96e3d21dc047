package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RiskTier is the coarse risk appetite selected by the user
type RiskTier string

const (
	RiskTierLow  RiskTier = "low"
	RiskTierHigh RiskTier = "high"
)

// ParseRiskTier converts user input into a RiskTier
// Accepts the English names and the French labels of the original form (faible/élevée)
func ParseRiskTier(s string) (RiskTier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "faible":
		return RiskTierLow, nil
	case "high", "élevée", "elevee", "élevé", "eleve":
		return RiskTierHigh, nil
	default:
		return "", fmt.Errorf("%w: risk tier must be 'low' or 'high', got %q", ErrInvalidInput, s)
	}
}

// ProfileName identifies one of the fixed allocation profiles
type ProfileName string

const (
	ProfileSafe           ProfileName = "SAFE"
	ProfileBalanced       ProfileName = "BALANCED"
	ProfileBalancedGrowth ProfileName = "BALANCED_GROWTH"
	ProfileDynamic        ProfileName = "DYNAMIC"
)

// Fixed UUIDs for the allocation profiles (stable across releases)
var (
	PROFILE_SAFE_ID            = uuid.MustParse("00000000-0000-0000-0000-000000000101")
	PROFILE_BALANCED_ID        = uuid.MustParse("00000000-0000-0000-0000-000000000102")
	PROFILE_BALANCED_GROWTH_ID = uuid.MustParse("00000000-0000-0000-0000-000000000103")
	PROFILE_DYNAMIC_ID         = uuid.MustParse("00000000-0000-0000-0000-000000000104")
)

// Profile is a fixed percentage breakdown across asset classes
type Profile struct {
	ID         uuid.UUID
	Name       ProfileName
	Label      string // French label shown to the user
	Allocation Allocation
}

// Profiles returns the four fixed allocation profiles
// A fresh copy is returned on each call so callers cannot alter the table
func Profiles() map[ProfileName]Profile {
	return map[ProfileName]Profile{
		ProfileSafe: {
			ID:         PROFILE_SAFE_ID,
			Name:       ProfileSafe,
			Label:      "sécuritaire",
			Allocation: NewAllocation(50, 25, 20, 5, 0),
		},
		ProfileBalanced: {
			ID:         PROFILE_BALANCED_ID,
			Name:       ProfileBalanced,
			Label:      "équilibré",
			Allocation: NewAllocation(35, 40, 20, 5, 0),
		},
		ProfileBalancedGrowth: {
			ID:         PROFILE_BALANCED_GROWTH_ID,
			Name:       ProfileBalancedGrowth,
			Label:      "équilibré croissance",
			Allocation: NewAllocation(20, 60, 15, 5, 0),
		},
		ProfileDynamic: {
			ID:         PROFILE_DYNAMIC_ID,
			Name:       ProfileDynamic,
			Label:      "dynamique",
			Allocation: NewAllocation(10, 70, 10, 5, 5),
		},
	}
}

// GetProfile returns one of the fixed profiles by name
func GetProfile(name ProfileName) (Profile, bool) {
	p, ok := Profiles()[name]
	return p, ok
}
