package engine

import (
	"context"
	"time"
)

// Argument is one weighted point for or against a decision.
type Argument struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Weight int    `json:"weight"` // 1-5
}

type DecisionResult string

const (
	ResultPro     DecisionResult = "pro"
	ResultContra  DecisionResult = "contra"
	ResultNeutral DecisionResult = "neutral"
)

// Decision is immutable once saved; there is no update operation.
type Decision struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Pros        []Argument     `json:"pros"`
	Contras     []Argument     `json:"contras"`
	ProScore    int            `json:"proScore"`
	ContraScore int            `json:"contraScore"`
	Result      DecisionResult `json:"result"`
	ResultText  string         `json:"resultText"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Scoring outcome of a pro/contra weighing.
type Scoring struct {
	ProScore    int
	ContraScore int
	Result      DecisionResult
	ResultText  string
}

// CalculateResult sums argument weights per side and maps the comparison to
// a fixed verdict text.
func CalculateResult(pros, contras []Argument) Scoring {
	proScore := 0
	for _, a := range pros {
		proScore += a.Weight
	}
	contraScore := 0
	for _, a := range contras {
		contraScore += a.Weight
	}

	sc := Scoring{ProScore: proScore, ContraScore: contraScore}
	switch {
	case proScore > contraScore:
		sc.Result = ResultPro
		sc.ResultText = "Rational sinnvoll"
	case contraScore > proScore:
		sc.Result = ResultContra
		sc.ResultText = "Eher nicht sinnvoll"
	default:
		sc.Result = ResultNeutral
		sc.ResultText = "Unentschieden – Bauchgefühl prüfen"
	}
	return sc
}

func (s *Service) loadDecisions(ctx context.Context) ([]Decision, error) {
	var out []Decision
	if err := s.store.LoadJSON(ctx, keyDecisions, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Decisions(ctx context.Context) ([]Decision, error) {
	return s.loadDecisions(ctx)
}

// CreateDecision scores the arguments, assigns ids and prepends the
// finished decision (newest first). Argument weights are taken as given;
// the engine performs no input validation beyond the title.
func (s *Service) CreateDecision(ctx context.Context, title string, pros, contras []Argument) (*Decision, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	for i := range pros {
		if pros[i].ID == "" {
			pros[i].ID = s.newID()
		}
	}
	for i := range contras {
		if contras[i].ID == "" {
			contras[i].ID = s.newID()
		}
	}

	sc := CalculateResult(pros, contras)
	d := Decision{
		ID:          s.newID(),
		Title:       t,
		Pros:        pros,
		Contras:     contras,
		ProScore:    sc.ProScore,
		ContraScore: sc.ContraScore,
		Result:      sc.Result,
		ResultText:  sc.ResultText,
		CreatedAt:   s.now(),
	}

	decisions, err := s.loadDecisions(ctx)
	if err != nil {
		return nil, err
	}
	decisions = append([]Decision{d}, decisions...)
	if err := s.store.SaveJSON(ctx, keyDecisions, decisions); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) DeleteDecision(ctx context.Context, id string) error {
	decisions, err := s.loadDecisions(ctx)
	if err != nil {
		return err
	}
	kept := decisions[:0]
	for _, d := range decisions {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	return s.store.SaveJSON(ctx, keyDecisions, kept)
}
