package predict

import (
	_ "embed"
	"text/template"
)

//go:embed prompts/success_prediction.md
var successPredictionPromptRaw string

// SuccessPredictionTemplate is the parsed prompt template for success
// prediction. Parsed once at package init; reused on every Predict call.
var SuccessPredictionTemplate = template.Must(template.New("success_prediction").Parse(successPredictionPromptRaw))
