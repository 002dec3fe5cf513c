package decisioning

import (
	"fmt"
	"sort"
	"strings"

	"capitalys/internal/domain/entities"
	"capitalys/pkg"
)

// DefaultSelicRate is used when no Selic observation has been ingested yet.
const DefaultSelicRate = 13.25

// StrategyScore is one ranked strategy with the numeric cost breakdown the
// engine computes. Marshalled as-is into the decision result's ranking
// document.
type StrategyScore struct {
	Type               string   `json:"tipo"`
	Name               string   `json:"nome"`
	TotalCost          float64  `json:"custo_total"`
	MonthlyInstallment float64  `json:"parcela_mensal"`
	TimeMonths         int      `json:"tempo_meses"`
	Advantages         []string `json:"vantagens"`
	Score              float64  `json:"score"`
}

// Evaluation is the full outcome of scoring one goal.
type Evaluation struct {
	Recommended      StrategyScore
	Ranking          []StrategyScore
	Explanation      string
	ExplanationTitle string
}

// Engine ranks the three financing strategies for a goal.
//
// The cost model is deliberately simple: a fixed multiplier per strategy
// over the goal value, with renda fixa reaching the goal slightly earlier
// because contributions earn yield. Scores start from a fixed base per
// strategy and shift with the goal's urgency, the user's risk profile and
// the current Selic rate.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

const (
	consorcioCostFactor = 1.12
	rendaFixaCostFactor = 1.0
	creditoCostFactor   = 1.45

	rendaFixaTermFactor = 0.9

	baseScoreConsorcio = 85
	baseScoreRendaFixa = 78
	baseScoreCredito   = 62

	highSelicThreshold = 12.0
	lowSelicThreshold  = 9.0
)

func (e *Engine) Evaluate(goal entities.FinancialGoal, profile entities.FinancialProfile, selic float64) Evaluation {
	if selic <= 0 {
		selic = DefaultSelicRate
	}
	term := goal.DesiredTerm
	if term <= 0 {
		term = 1
	}

	consorcio := StrategyScore{
		Type:       entities.StrategyConsorcio,
		Name:       "Consórcio",
		TotalCost:  round2(goal.EstimatedValue * consorcioCostFactor),
		TimeMonths: term,
		Advantages: []string{"Sem juros", "Parcelas menores", "Disciplina de poupança"},
		Score:      baseScoreConsorcio,
	}
	consorcio.MonthlyInstallment = round2(consorcio.TotalCost / float64(consorcio.TimeMonths))

	rendaFixaMonths := int(float64(term) * rendaFixaTermFactor)
	if rendaFixaMonths < 1 {
		rendaFixaMonths = 1
	}
	rendaFixa := StrategyScore{
		Type:       entities.StrategyRendaFixa,
		Name:       "Renda Fixa",
		TotalCost:  round2(goal.EstimatedValue * rendaFixaCostFactor),
		TimeMonths: rendaFixaMonths,
		Advantages: []string{"Sem dívidas", "Rendimento garantido", "Flexibilidade total"},
		Score:      baseScoreRendaFixa,
	}
	rendaFixa.MonthlyInstallment = round2(rendaFixa.TotalCost / float64(rendaFixa.TimeMonths))

	credito := StrategyScore{
		Type:       entities.StrategyCredito,
		Name:       "Crédito",
		TotalCost:  round2(goal.EstimatedValue * creditoCostFactor),
		TimeMonths: term,
		Advantages: []string{"Posse imediata", "Aprovação rápida", "Parcelas fixas"},
		Score:      baseScoreCredito,
	}
	credito.MonthlyInstallment = round2(credito.TotalCost / float64(credito.TimeMonths))

	// Urgency: waiting strategies lose ground as urgency rises, credit
	// gains because it delivers the asset immediately.
	switch goal.UrgencyLevel {
	case entities.UrgencyBaixa:
		rendaFixa.Score += 8
	case entities.UrgencyAlta:
		credito.Score += 10
		rendaFixa.Score -= 8
	case entities.UrgencyUrgente:
		credito.Score += 20
		rendaFixa.Score -= 16
		consorcio.Score -= 6
	}

	// Selic: high rates make fixed income yield more and credit cost more.
	switch {
	case selic >= highSelicThreshold:
		rendaFixa.Score += 6
		credito.Score -= 6
	case selic < lowSelicThreshold:
		credito.Score += 4
	}

	switch profile.RiskProfile {
	case entities.RiskConservador:
		rendaFixa.Score += 4
		credito.Score -= 4
	case entities.RiskAgressivo:
		credito.Score += 4
	}

	ranking := []StrategyScore{consorcio, rendaFixa, credito}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})

	recommended := ranking[0]
	return Evaluation{
		Recommended:      recommended,
		Ranking:          ranking,
		Explanation:      e.explain(goal, recommended, selic),
		ExplanationTitle: fmt.Sprintf("Por que %s?", recommended.Name),
	}
}

func (e *Engine) explain(goal entities.FinancialGoal, s StrategyScore, selic float64) string {
	switch s.Type {
	case entities.StrategyConsorcio:
		return fmt.Sprintf(
			"Para um objetivo de %s em %d meses, o consórcio equilibra custo e prazo: sem juros, o custo total fica em %s com parcelas de %s.",
			pkg.FormatCurrency(goal.EstimatedValue), goal.DesiredTerm,
			pkg.FormatCurrency(s.TotalCost), pkg.FormatCurrency(s.MonthlyInstallment),
		)
	case entities.StrategyRendaFixa:
		return fmt.Sprintf(
			"Com a Selic em %s ao ano, poupar em renda fixa é a rota mais barata: aportes de %s alcançam %s em cerca de %d meses.",
			formatRate(selic), pkg.FormatCurrency(s.MonthlyInstallment),
			pkg.FormatCurrency(goal.EstimatedValue), s.TimeMonths,
		)
	case entities.StrategyCredito:
		return fmt.Sprintf(
			"Pela urgência do objetivo, o crédito entrega o bem de imediato. O custo total sobe para %s com a Selic em %s, em parcelas de %s.",
			pkg.FormatCurrency(s.TotalCost), formatRate(selic),
			pkg.FormatCurrency(s.MonthlyInstallment),
		)
	default:
		return ""
	}
}

func formatRate(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f%%", v), ".", ",", 1)
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
