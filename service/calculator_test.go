package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"alimony-calculator/domain"
)

func TestCalculate_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		input      domain.CalculationInput
		alimony    int64
		percentage int
		breakdown  domain.Breakdown
	}{
		{
			name: "base share only",
			input: domain.CalculationInput{
				HusbandIncome:    100000,
				MarriageDuration: 5,
			},
			alimony:    25000,
			percentage: 25,
			breakdown: domain.Breakdown{
				Base: "25%", PerChild: "0%", LongMarriage: "0%",
				WomanIncomeDeduction: "0%", PropertyBonus: "0%", LandBonus: "0%",
			},
		},
		{
			name: "children long marriage and assets",
			input: domain.CalculationInput{
				HusbandIncome:    200000,
				NumberOfChildren: 2,
				PropertyValue:    4000000,
				LandValue:        1500000,
				MarriageDuration: 12,
			},
			alimony:    106000,
			percentage: 53,
			breakdown: domain.Breakdown{
				Base: "25%", PerChild: "10%", LongMarriage: "10%",
				WomanIncomeDeduction: "0%", PropertyBonus: "5%", LandBonus: "3%",
			},
		},
		{
			name: "woman has income",
			input: domain.CalculationInput{
				HusbandIncome:    200000,
				NumberOfChildren: 2,
				PropertyValue:    4000000,
				LandValue:        1500000,
				MarriageDuration: 12,
				WomanIncome:      1,
			},
			alimony:    86000,
			percentage: 43,
			breakdown: domain.Breakdown{
				Base: "25%", PerChild: "10%", LongMarriage: "10%",
				WomanIncomeDeduction: "-10%", PropertyBonus: "5%", LandBonus: "3%",
			},
		},
		{
			name: "clamped to seventy percent",
			input: domain.CalculationInput{
				HusbandIncome:    100000,
				NumberOfChildren: 10,
				PropertyValue:    4000000,
				LandValue:        1500000,
				MarriageDuration: 12,
			},
			alimony:    70000,
			percentage: 70,
			breakdown: domain.Breakdown{
				Base: "25%", PerChild: "50%", LongMarriage: "10%",
				WomanIncomeDeduction: "0%", PropertyBonus: "5%", LandBonus: "3%",
			},
		},
		{
			name: "thresholds are inclusive",
			input: domain.CalculationInput{
				HusbandIncome:    100000,
				PropertyValue:    PropertyBonusFloor,
				LandValue:        LandBonusFloor,
				MarriageDuration: LongMarriageYears,
			},
			alimony:    43000,
			percentage: 43,
			breakdown: domain.Breakdown{
				Base: "25%", PerChild: "0%", LongMarriage: "10%",
				WomanIncomeDeduction: "0%", PropertyBonus: "5%", LandBonus: "3%",
			},
		},
		{
			name: "rounds half up",
			input: domain.CalculationInput{
				HusbandIncome: 10,
			},
			alimony:    3,
			percentage: 25,
			breakdown: domain.Breakdown{
				Base: "25%", PerChild: "0%", LongMarriage: "0%",
				WomanIncomeDeduction: "0%", PropertyBonus: "0%", LandBonus: "0%",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Calculate(tt.input)
			assert.Equal(t, tt.alimony, result.Alimony)
			assert.Equal(t, tt.percentage, result.Percentage)
			assert.Equal(t, tt.breakdown, result.Breakdown)
		})
	}
}

func TestCalculate_PercentageBounds(t *testing.T) {
	for children := 0; children <= MaxChildren; children++ {
		for _, duration := range []float64{0, 10} {
			for _, woman := range []float64{0, 500} {
				for _, assets := range []float64{0, 5_000_000} {
					in := domain.CalculationInput{
						HusbandIncome:    123457,
						NumberOfChildren: children,
						MarriageDuration: duration,
						WomanIncome:      woman,
						PropertyValue:    assets,
						LandValue:        assets,
					}
					result := Calculate(in)

					assert.GreaterOrEqual(t, result.Percentage, 0)
					assert.LessOrEqual(t, result.Percentage, 70)

					share := math.Max(0, math.Min(Fraction(in), MaxShare))
					assert.Equal(t, int64(math.Round(in.HusbandIncome*share)), result.Alimony)
					assert.InDelta(t, in.HusbandIncome*float64(result.Percentage)/100, float64(result.Alimony), in.HusbandIncome*0.005+1)
				}
			}
		}
	}
}

func TestFraction_MonotoneInChildren(t *testing.T) {
	base := domain.CalculationInput{
		HusbandIncome:    50000,
		MarriageDuration: 12,
		WomanIncome:      1000,
		PropertyValue:    3_500_000,
	}

	prev := math.Inf(-1)
	for children := 0; children <= MaxChildren; children++ {
		in := base
		in.NumberOfChildren = children
		f := Fraction(in)
		assert.GreaterOrEqual(t, f, prev, "children=%d", children)
		prev = f
	}
}

func TestCalculate_BreakdownIgnoresClamp(t *testing.T) {
	result := Calculate(domain.CalculationInput{
		HusbandIncome:    1000,
		NumberOfChildren: 9,
		MarriageDuration: 20,
	})

	assert.Equal(t, 70, result.Percentage)
	assert.Equal(t, "45%", result.Breakdown.PerChild)
	assert.Equal(t, "10%", result.Breakdown.LongMarriage)
}
