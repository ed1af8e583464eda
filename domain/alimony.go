package domain

import "time"

// Field names as they appear in the request body.
const (
	FieldHusbandIncome    = "husbandIncome"
	FieldNumberOfChildren = "numberOfChildren"
	FieldPropertyValue    = "propertyValue"
	FieldLandValue        = "landValue"
	FieldMarriageDuration = "marriageDuration"
	FieldWomanIncome      = "womanIncome"
)

// RequiredFields lists every input field in validation order.
var RequiredFields = []string{
	FieldHusbandIncome,
	FieldNumberOfChildren,
	FieldPropertyValue,
	FieldLandValue,
	FieldMarriageDuration,
	FieldWomanIncome,
}

// CalculationInput is a validated set of the six calculator inputs.
type CalculationInput struct {
	HusbandIncome    float64 `json:"husbandIncome"`
	NumberOfChildren int     `json:"numberOfChildren"`
	PropertyValue    float64 `json:"propertyValue"`
	LandValue        float64 `json:"landValue"`
	MarriageDuration float64 `json:"marriageDuration"`
	WomanIncome      float64 `json:"womanIncome"`
}

// Breakdown reports the nominal effect of each rule of the formula.
type Breakdown struct {
	Base                 string `json:"base"`
	PerChild             string `json:"perChild"`
	LongMarriage         string `json:"longMarriage"`
	WomanIncomeDeduction string `json:"womanIncomeDeduction"`
	PropertyBonus        string `json:"propertyBonus"`
	LandBonus            string `json:"landBonus"`
}

type CalculationResult struct {
	Alimony    int64     `json:"alimony"`
	Percentage int       `json:"percentage"`
	Breakdown  Breakdown `json:"breakdown"`
}

// CalculationRecord is a stored calculation, kept so it can be fetched again.
type CalculationRecord struct {
	ID        string            `json:"id"`
	Input     CalculationInput  `json:"input"`
	Result    CalculationResult `json:"result"`
	CreatedAt time.Time         `json:"createdAt"`
}
