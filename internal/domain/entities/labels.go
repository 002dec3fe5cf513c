package entities

// Display names used in explanations and API responses.

var StrategyLabels = map[string]string{
	StrategyConsorcio: "Consórcio",
	StrategyRendaFixa: "Renda Fixa",
	StrategyCredito:   "Crédito",
	"emprestimo":      "Empréstimo",
}

var UrgencyLabels = map[UrgencyLevel]string{
	UrgencyBaixa:   "Baixa",
	UrgencyMedia:   "Média",
	UrgencyAlta:    "Alta",
	UrgencyUrgente: "Urgente",
}

var RiskProfileLabels = map[RiskProfile]string{
	RiskConservador: "Conservador",
	RiskModerado:    "Moderado",
	RiskAgressivo:   "Agressivo",
}

var IncomeStabilityLabels = map[IncomeStability]string{
	StabilityCLT:          "CLT",
	StabilityAutonomo:     "Autônomo",
	StabilityPJ:           "PJ",
	StabilityNaoInformado: "Prefiro não informar",
}

var IndicatorNames = map[IndicatorType]string{
	IndicatorSelic: "Taxa Selic",
	IndicatorIPCA:  "IPCA",
	IndicatorPIB:   "PIB",
}

// StrategyLabel resolves a strategy tag to its display name, falling back to
// the tag itself for variants written by older workflow revisions.
func StrategyLabel(tipo string) string {
	if label, ok := StrategyLabels[tipo]; ok {
		return label
	}
	return tipo
}
