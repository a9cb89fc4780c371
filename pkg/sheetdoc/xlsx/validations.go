package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/sheetdoc-go/pkg/sheetdoc/models"
)

var validationTypes = map[string]excelize.DataValidationType{
	models.ValidationWhole:      excelize.DataValidationTypeWhole,
	models.ValidationDecimal:    excelize.DataValidationTypeDecimal,
	models.ValidationDate:       excelize.DataValidationTypeDate,
	models.ValidationTime:       excelize.DataValidationTypeTime,
	models.ValidationTextLength: excelize.DataValidationTypeTextLength,
}

var validationOperators = map[string]excelize.DataValidationOperator{
	models.OperatorBetween:            excelize.DataValidationOperatorBetween,
	models.OperatorNotBetween:         excelize.DataValidationOperatorNotBetween,
	models.OperatorEqual:              excelize.DataValidationOperatorEqual,
	models.OperatorNotEqual:           excelize.DataValidationOperatorNotEqual,
	models.OperatorGreaterThan:        excelize.DataValidationOperatorGreaterThan,
	models.OperatorLessThan:           excelize.DataValidationOperatorLessThan,
	models.OperatorGreaterThanOrEqual: excelize.DataValidationOperatorGreaterThanOrEqual,
	models.OperatorLessThanOrEqual:    excelize.DataValidationOperatorLessThanOrEqual,
}

var errorStyles = map[string]excelize.DataValidationErrorStyle{
	models.ErrorStyleStop:        excelize.DataValidationErrorStyleStop,
	models.ErrorStyleWarning:     excelize.DataValidationErrorStyleWarning,
	models.ErrorStyleInformation: excelize.DataValidationErrorStyleInformation,
}

// toDataValidation converts the rule registered at address into an excelize
// data validation.
func toDataValidation(address string, rule models.DataValidation) (*excelize.DataValidation, error) {
	dv := excelize.NewDataValidation(rule.AllowBlank)
	dv.Sqref = address

	switch rule.Type {
	case models.ValidationAny, "":
		dv.Type = "none"
	case models.ValidationList:
		if len(rule.Formulae) == 0 {
			return nil, fmt.Errorf("list validation at %s has no source", address)
		}
		src := rule.Formulae[0]
		if strings.HasPrefix(src, `"`) {
			if err := dv.SetDropList(strings.Split(strings.Trim(src, `"`), ",")); err != nil {
				return nil, err
			}
		} else {
			dv.SetSqrefDropList(src)
		}
	case models.ValidationCustom:
		if len(rule.Formulae) == 0 {
			return nil, fmt.Errorf("custom validation at %s has no formula", address)
		}
		dv.Type = models.ValidationCustom
		dv.Formula1 = rule.Formulae[0]
	default:
		t, ok := validationTypes[rule.Type]
		if !ok {
			return nil, fmt.Errorf("unknown validation type %q", rule.Type)
		}
		if len(rule.Formulae) == 0 {
			return nil, fmt.Errorf("%s validation at %s has no operands", rule.Type, address)
		}
		op, ok := validationOperators[rule.Operator]
		if !ok {
			op = excelize.DataValidationOperatorBetween
		}
		f1, f2 := rule.Formulae[0], rule.Formulae[0]
		if len(rule.Formulae) > 1 {
			f2 = rule.Formulae[1]
		}
		if err := dv.SetRange(f1, f2, t, op); err != nil {
			return nil, err
		}
	}

	if rule.ShowInputMessage {
		dv.SetInput(rule.PromptTitle, rule.Prompt)
	}
	if rule.ShowErrorMessage {
		style, ok := errorStyles[rule.ErrorStyle]
		if !ok {
			style = excelize.DataValidationErrorStyleStop
		}
		dv.SetError(style, rule.ErrorTitle, rule.Error)
	}
	return dv, nil
}

// fromDataValidation converts an excelize data validation back into a rule.
func fromDataValidation(dv *excelize.DataValidation) models.DataValidation {
	rule := models.DataValidation{
		Type:             dv.Type,
		Operator:         dv.Operator,
		AllowBlank:       dv.AllowBlank,
		ShowInputMessage: dv.ShowInputMessage,
		PromptTitle:      deref(dv.PromptTitle),
		Prompt:           deref(dv.Prompt),
		ShowErrorMessage: dv.ShowErrorMessage,
		ErrorStyle:       deref(dv.ErrorStyle),
		ErrorTitle:       deref(dv.ErrorTitle),
		Error:            deref(dv.Error),
	}
	if rule.Type == "" || rule.Type == "none" {
		rule.Type = models.ValidationAny
	}
	for _, formula := range []string{dv.Formula1, dv.Formula2} {
		if formula = stripFormulaTags(formula); formula != "" {
			rule.Formulae = append(rule.Formulae, formula)
		}
	}
	if rule.Operator == "" && len(rule.Formulae) > 0 {
		if _, ranged := validationTypes[rule.Type]; ranged {
			rule.Operator = models.OperatorBetween
		}
	}
	return rule
}

// stripFormulaTags removes the element wrapper some excelize releases leave
// around formula text.
func stripFormulaTags(s string) string {
	for _, tag := range []string{"formula1", "formula2"} {
		s = strings.TrimPrefix(s, "<"+tag+">")
		s = strings.TrimSuffix(s, "</"+tag+">")
	}
	return strings.TrimSpace(s)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
