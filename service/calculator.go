package service

import (
	"fmt"
	"math"

	"alimony-calculator/domain"
)

// Fraction returns the share of husband's income before clamping.
//
// The terms are added one at a time in a fixed order and every step is
// rounded to float64, so the result is reproducible to the last bit.
func Fraction(in domain.CalculationInput) float64 {
	fraction := BaseShare
	fraction = float64(fraction + float64(float64(in.NumberOfChildren)*PerChildShare))
	if in.MarriageDuration >= LongMarriageYears {
		fraction = float64(fraction + LongMarriageShare)
	}
	if in.WomanIncome > 0 {
		fraction = float64(fraction - WomanIncomeDeduction)
	}
	if in.PropertyValue >= PropertyBonusFloor {
		fraction = float64(fraction + PropertyBonusShare)
	}
	if in.LandValue >= LandBonusFloor {
		fraction = float64(fraction + LandBonusShare)
	}
	return fraction
}

// Calculate computes the alimony estimate for a validated input.
func Calculate(in domain.CalculationInput) domain.CalculationResult {
	share := math.Max(0, math.Min(Fraction(in), MaxShare))

	return domain.CalculationResult{
		Alimony:    int64(math.Round(float64(in.HusbandIncome * share))),
		Percentage: int(math.Round(float64(share * 100))),
		Breakdown:  breakdownFor(in),
	}
}

// breakdownFor reports each rule's nominal effect. It is not adjusted when
// the total is clamped, so the items may add up to more than Percentage.
func breakdownFor(in domain.CalculationInput) domain.Breakdown {
	b := domain.Breakdown{
		Base:                 "25%",
		PerChild:             fmt.Sprintf("%d%%", in.NumberOfChildren*perChildPercentPoints),
		LongMarriage:         "0%",
		WomanIncomeDeduction: "0%",
		PropertyBonus:        "0%",
		LandBonus:            "0%",
	}
	if in.MarriageDuration >= LongMarriageYears {
		b.LongMarriage = "10%"
	}
	if in.WomanIncome > 0 {
		b.WomanIncomeDeduction = "-10%"
	}
	if in.PropertyValue >= PropertyBonusFloor {
		b.PropertyBonus = "5%"
	}
	if in.LandValue >= LandBonusFloor {
		b.LandBonus = "3%"
	}
	return b
}
