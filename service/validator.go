package service

import (
	"encoding/json"
	"math"

	"alimony-calculator/domain"
)

type fieldRule struct {
	name    string
	max     float64
	integer bool
	message string
}

// Checked in this order; error messages keep the same order.
var fieldRules = []fieldRule{
	{domain.FieldHusbandIncome, MaxIncome, false, "Husband's income must be between 0 and 1,00,00,000 INR"},
	{domain.FieldNumberOfChildren, MaxChildren, true, "Number of children must be between 0 and 10"},
	{domain.FieldPropertyValue, MaxAssetValue, false, "Property value must be between 0 and 10,00,00,000 INR"},
	{domain.FieldLandValue, MaxAssetValue, false, "Land value must be between 0 and 10,00,00,000 INR"},
	{domain.FieldMarriageDuration, MaxMarriageDuration, false, "Marriage duration must be between 0 and 50 years"},
	{domain.FieldWomanIncome, MaxIncome, false, "Woman's income must be between 0 and 1,00,00,000 INR"},
}

// Validate turns an untyped request body into a CalculationInput.
//
// A missing or null field fails fast with ErrMissingFields. Otherwise every
// type and range violation is collected into an *InvalidInputError.
func Validate(raw map[string]any) (domain.CalculationInput, error) {
	for _, name := range domain.RequiredFields {
		if v, ok := raw[name]; !ok || v == nil {
			return domain.CalculationInput{}, ErrMissingFields
		}
	}

	values := make(map[string]float64, len(fieldRules))
	var messages []string
	for _, rule := range fieldRules {
		v, ok := toNumber(raw[rule.name])
		if !ok || v < 0 || v > rule.max || (rule.integer && v != math.Trunc(v)) {
			messages = append(messages, rule.message)
			continue
		}
		values[rule.name] = v
	}
	if len(messages) > 0 {
		return domain.CalculationInput{}, &InvalidInputError{Errors: messages}
	}

	return domain.CalculationInput{
		HusbandIncome:    values[domain.FieldHusbandIncome],
		NumberOfChildren: int(values[domain.FieldNumberOfChildren]),
		PropertyValue:    values[domain.FieldPropertyValue],
		LandValue:        values[domain.FieldLandValue],
		MarriageDuration: values[domain.FieldMarriageDuration],
		WomanIncome:      values[domain.FieldWomanIncome],
	}, nil
}

// toNumber accepts the numeric shapes a decoded body can hold. Strings and
// booleans are not numbers, even if they parse as one.
func toNumber(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
