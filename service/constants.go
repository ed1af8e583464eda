package service

const (
	MaxIncome           = 100_000_000.0   // 10 crore
	MaxAssetValue       = 1_000_000_000.0 // 100 crore
	MaxChildren         = 10
	MaxMarriageDuration = 50.0 // years

	// Formula terms, as fractions of husband's income.
	BaseShare             = 0.25
	PerChildShare         = 0.05
	LongMarriageShare     = 0.10
	WomanIncomeDeduction  = 0.10
	PropertyBonusShare    = 0.05
	LandBonusShare        = 0.03
	MaxShare              = 0.70
	LongMarriageYears     = 10.0
	PropertyBonusFloor    = 3_000_000.0
	LandBonusFloor        = 1_000_000.0
	perChildPercentPoints = 5
)
