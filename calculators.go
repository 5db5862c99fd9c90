package main

import (
	"fmt"
	"sort"
)

// Calculator turns one initiative's parameters into an ROI result. Calculators
// are pure: they read only the set they are given and never modify it.
type Calculator func(ParameterSet) ROIResult

// calculatorRegistry holds every formula variant for every initiative kind
var calculatorRegistry = map[InitiativeKind]map[FormulaVariant]Calculator{
	KindLeadership: {
		VariantIncremental:     calculateLeadershipIncremental,
		VariantParticipantTime: calculateLeadershipParticipantTime,
	},
	KindRecruiting: {
		VariantExpanded: calculateRecruitingExpanded,
		VariantBasic:    calculateRecruitingBasic,
	},
	KindTimeToFill: {
		VariantStandard: calculateTimeToFill,
	},
	KindOnboarding: {
		VariantStandard: calculateOnboarding,
	},
	KindEngagement: {
		VariantExpanded: calculateEngagementExpanded,
		VariantBasic:    calculateEngagementBasic,
	},
	KindTalentDevelopment: {
		VariantExpanded: calculateTalentExpanded,
		VariantBasic:    calculateTalentBasic,
	},
	KindKnowledgeTransfer: {
		VariantStandard: calculateKnowledgeTransfer,
	},
}

// defaultVariants is the latest formula design for each kind
var defaultVariants = map[InitiativeKind]FormulaVariant{
	KindLeadership:        VariantIncremental,
	KindRecruiting:        VariantExpanded,
	KindTimeToFill:        VariantStandard,
	KindOnboarding:        VariantStandard,
	KindEngagement:        VariantExpanded,
	KindTalentDevelopment: VariantExpanded,
	KindKnowledgeTransfer: VariantStandard,
}

// DefaultVariant returns the preferred formula variant for a kind
func DefaultVariant(kind InitiativeKind) FormulaVariant {
	if v, ok := defaultVariants[kind]; ok {
		return v
	}
	return VariantStandard
}

// Variants lists the registered variants of a kind, default first
func Variants(kind InitiativeKind) []FormulaVariant {
	def := DefaultVariant(kind)
	var out []FormulaVariant
	for v := range calculatorRegistry[kind] {
		if v != def {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return append([]FormulaVariant{def}, out...)
}

func lookupCalculator(kind InitiativeKind, variant FormulaVariant) (Calculator, error) {
	variants, ok := calculatorRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: no calculators for kind %s", ErrUnknownVariant, kind)
	}
	calc, ok := variants[variant]
	if !ok {
		return nil, fmt.Errorf("%w: %q for kind %s", ErrUnknownVariant, variant, kind)
	}
	return calc, nil
}

// Calculate runs the calculator registered for kind and variant. An empty
// variant selects the kind's default.
func Calculate(kind InitiativeKind, variant FormulaVariant, params ParameterSet) (ROIResult, error) {
	if variant == "" {
		variant = DefaultVariant(kind)
	}
	calc, err := lookupCalculator(kind, variant)
	if err != nil {
		return ROIResult{}, err
	}
	return calc(params), nil
}

// CalculateInitiative evaluates a catalog definition with the given parameters
func CalculateInitiative(def InitiativeDefinition, variant FormulaVariant, params ParameterSet) (InitiativeResult, error) {
	if variant == "" {
		variant = def.Variant()
	}
	result, err := Calculate(def.Kind, variant, params)
	if err != nil {
		return InitiativeResult{}, fmt.Errorf("calculate %s: %w", def.Key, err)
	}
	return InitiativeResult{
		Key:     def.Key,
		Name:    def.Name,
		Variant: variant,
		Result:  result,
	}, nil
}
