package models

// Validation types.
const (
	ValidationAny        = "any"
	ValidationList       = "list"
	ValidationWhole      = "whole"
	ValidationDecimal    = "decimal"
	ValidationDate       = "date"
	ValidationTime       = "time"
	ValidationTextLength = "textLength"
	ValidationCustom     = "custom"
)

// Validation operators.
const (
	OperatorBetween            = "between"
	OperatorNotBetween         = "notBetween"
	OperatorEqual              = "equal"
	OperatorNotEqual           = "notEqual"
	OperatorGreaterThan        = "greaterThan"
	OperatorLessThan           = "lessThan"
	OperatorGreaterThanOrEqual = "greaterThanOrEqual"
	OperatorLessThanOrEqual    = "lessThanOrEqual"
)

// Error alert styles.
const (
	ErrorStyleStop        = "stop"
	ErrorStyleWarning     = "warning"
	ErrorStyleInformation = "information"
)

// DataValidation is a rule constraining the values a cell accepts.
type DataValidation struct {
	// Type is one of the Validation* constants.
	Type string `json:"type" yaml:"type"`
	// Operator applies to whole, decimal, date, time and textLength rules.
	Operator   string `json:"operator,omitempty" yaml:"operator"`
	AllowBlank bool   `json:"allowBlank,omitempty" yaml:"allowBlank"`
	// Formulae holds one or two operands. A list rule holds either a single
	// range reference or the quoted, comma separated choices.
	Formulae []string `json:"formulae,omitempty" yaml:"formulae"`

	ShowInputMessage bool   `json:"showInputMessage,omitempty" yaml:"showInputMessage"`
	PromptTitle      string `json:"promptTitle,omitempty" yaml:"promptTitle"`
	Prompt           string `json:"prompt,omitempty" yaml:"prompt"`

	ShowErrorMessage bool   `json:"showErrorMessage,omitempty" yaml:"showErrorMessage"`
	ErrorStyle       string `json:"errorStyle,omitempty" yaml:"errorStyle"`
	ErrorTitle       string `json:"errorTitle,omitempty" yaml:"errorTitle"`
	Error            string `json:"error,omitempty" yaml:"error"`
}
