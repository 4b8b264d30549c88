package payment

import "strings"

const MethodCOD = "COD"

var instructionMap = map[string][]string{
	MethodCOD: {
		"Your order will be shipped to the delivery address",
		"Keep {{amount}} in cash ready when the courier arrives",
		"Check that the amount matches your order total",
		"Pay the courier directly on delivery",
		"Keep the payment receipt from the courier",
	},
}

// GetInstructions returns the payment steps for a method, with a generic
// fallback for methods that have no template.
func GetInstructions(method string) []string {
	if steps, ok := instructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions shown on this page",
	}
}

type InstructionVars map[string]string

// InjectVariables substitutes {{key}} placeholders in each step.
func InjectVariables(steps []string, vars InstructionVars) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}
