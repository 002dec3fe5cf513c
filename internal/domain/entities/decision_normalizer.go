package entities

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"capitalys/pkg"
)

// Decision rows have been written by two workflow generations with different
// ranking shapes:
//
//	legacy:  {"tipo","nome","custo_total","parcela_mensal","tempo_meses","vantagens","score"}
//	         with numeric cost/installment/term fields
//	current: {"tipo","nome","custoTotal","parcelaMensal","tempoParaConquista"}
//	         with pre-formatted display strings
//
// There is no migration marker on stored rows, so every read boundary goes
// through NormalizeDecision and both generations are supported indefinitely.
// The canonical shape uses display strings; numeric inputs are formatted
// here. Every coercion is total: a type mismatch degrades to the empty value
// for that field, never to an error.

// NormalizeDecision converts a raw decision record of unknown shape into the
// canonical DecisionResult. A nil input yields nil.
func NormalizeDecision(raw map[string]any) *DecisionResult {
	if raw == nil {
		return nil
	}
	return &DecisionResult{
		ID:                  coerceString(raw["id"]),
		GoalID:              coerceString(raw["goal_id"]),
		RecommendedStrategy: coerceString(raw["recommended_strategy"]),
		Ranking:             NormalizeRanking(raw["ranking"]),
		Explanation:         coerceString(raw["explanation"]),
		ExplanationTitle:    coerceString(raw["explanation_title"]),
		AnalysisDate:        coerceTime(raw["analysis_date"]),
		CreatedAt:           coerceTime(raw["created_at"]),
	}
}

// NormalizeRanking coerces a ranking value of unknown shape into a non-nil
// slice of canonical options. Raw JSON (string or bytes) is decoded first;
// anything that is not an array yields an empty slice.
func NormalizeRanking(v any) []StrategyOption {
	switch t := v.(type) {
	case []byte:
		v = decodeJSONArray(t)
	case json.RawMessage:
		v = decodeJSONArray(t)
	case string:
		v = decodeJSONArray([]byte(t))
	}

	items, ok := v.([]any)
	if !ok {
		return []StrategyOption{}
	}

	options := make([]StrategyOption, 0, len(items))
	for _, item := range items {
		options = append(options, normalizeOption(item))
	}
	return options
}

func decodeJSONArray(b []byte) any {
	var items []any
	if err := json.Unmarshal(b, &items); err != nil {
		return nil
	}
	return items
}

func normalizeOption(v any) StrategyOption {
	m, ok := v.(map[string]any)
	if !ok {
		return StrategyOption{Advantages: []string{}}
	}

	tipo := coerceString(m["tipo"])
	nome := coerceString(m["nome"])
	if nome == "" && tipo != "" {
		nome = StrategyLabel(tipo)
	}

	return StrategyOption{
		Type:               tipo,
		Name:               nome,
		TotalCost:          coerceMoney(m, "custo_total", "custoTotal"),
		MonthlyInstallment: coerceMoney(m, "parcela_mensal", "parcelaMensal"),
		TimeToComplete:     coerceTerm(m),
		Advantages:         coerceStrings(m["vantagens"]),
		Score:              coerceFloat(m["score"]),
	}
}

func coerceMoney(m map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case float64:
			return pkg.FormatCurrency(t)
		case int:
			return pkg.FormatCurrency(float64(t))
		case json.Number:
			if f, err := t.Float64(); err == nil {
				return pkg.FormatCurrency(f)
			}
		}
	}
	return ""
}

func coerceTerm(m map[string]any) string {
	if s := coerceString(m["tempoParaConquista"]); s != "" {
		return s
	}
	if v, ok := m["tempo_meses"]; ok {
		if f := coerceFloat(v); f > 0 {
			return fmt.Sprintf("%d meses", int(math.Round(f)))
		}
	}
	return ""
}

func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func coerceFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func coerceStrings(v any) []string {
	switch t := v.(type) {
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

func coerceTime(v any) time.Time {
	s := coerceString(v)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
