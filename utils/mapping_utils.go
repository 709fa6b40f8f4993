package utils

import (
	"strings"

	"github.com/Yalanday/test-selsup/models"
)

// NormalizeParamKind maps kind aliases to their canonical ParamKind
// Input is normalized to lowercase before mapping
// Empty input maps to text; unknown kinds are kept (lowercased) since kinds are never enforced
func NormalizeParamKind(kind string) models.ParamKind {
	kindLower := strings.ToLower(strings.TrimSpace(kind))

	kindMap := map[string]models.ParamKind{
		"":       models.ParamKindText,
		"text":   models.ParamKindText,
		"string": models.ParamKindText,
		"строка": models.ParamKindText,
		"текст":  models.ParamKindText,
		"number": models.ParamKindNumber,
		"int":    models.ParamKindNumber,
		"float":  models.ParamKindNumber,
		"число":  models.ParamKindNumber,
		"array":  models.ParamKindArray,
		"list":   models.ParamKindArray,
		"список": models.ParamKindArray,
	}

	if k, exists := kindMap[kindLower]; exists {
		return k
	}

	return models.ParamKind(kindLower)
}

// ParamNames builds an id -> name lookup for a schema
func ParamNames(params []models.ParameterSchema) map[int]string {
	names := make(map[int]string, len(params))
	for _, p := range params {
		names[p.ID] = p.Name
	}
	return names
}
