package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Explainer produces a natural-language compatibility explanation for a
// profile/job pair. It never produces a score: the deterministic algorithm
// owns the number, this only replaces its canned explanation text when the
// model answers in time.
type Explainer struct {
	generator contentGenerator
	logger    *log.Logger
}

func NewExplainer(generator contentGenerator, logger *log.Logger) *Explainer {
	return &Explainer{generator: generator, logger: logger}
}

type ExplainInput struct {
	Skills       []string
	Requirements []string
	JobTitle     string
	JobLevel     string
}

const promptTemplate = `Calcule a compatibilidade do perfil do usuário com a vaga de emprego. O usuário possui as seguintes habilidades: %s. A vaga "%s" requer as seguintes habilidades: %s. Nível da vaga: %s.

Analise as habilidades do usuário e compare com os requisitos da vaga. Explique detalhadamente por que o usuário é ou não compatível com a vaga e inclua sugestões de como ele pode melhorar sua compatibilidade, se necessário. Responda em texto corrido, sem formatação.`

func (e *Explainer) Explain(ctx context.Context, in ExplainInput) (string, error) {
	if e == nil || e.generator == nil {
		return "", errors.New("explainer is not configured")
	}
	if len(in.Skills) == 0 || len(in.Requirements) == 0 {
		return "", errors.New("skills and requirements are required")
	}

	prompt := fmt.Sprintf(promptTemplate,
		strings.Join(in.Skills, ", "),
		strings.TrimSpace(in.JobTitle),
		strings.Join(in.Requirements, ", "),
		strings.TrimSpace(in.JobLevel),
	)

	text, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		if e.logger != nil {
			e.logger.Printf("[AI] explanation failed, falling back to local details: %v", err)
		}
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty explanation")
	}
	return text, nil
}
