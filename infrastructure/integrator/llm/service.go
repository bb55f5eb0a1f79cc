package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/boraedu/bora-hub-api/infrastructure/integrator/llm/llmclient"
	"github.com/boraedu/bora-hub-api/internal/config"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/$GOFILE -package=mocks

var (
	ErrDisabled      = errors.New("geração por IA desabilitada")
	ErrEmptyResponse = errors.New("resposta vazia do modelo")
)

const systemPrompt = `Você é um analista de operações da BORA. Receberá um JSON com indicadores agregados
de um período (vendas, comissões, chamados, tarefas, OKRs, conteúdo, eventos, mentorias, PDIs e patrocínios).
Escreva um relatório executivo em português, em markdown, com um resumo geral, uma seção por escopo
presente nos dados, pontos de atenção e recomendações objetivas. Não invente números que não estejam no JSON.
Quando um escopo tiver erro, informe que os dados não estavam disponíveis.`

type Writer interface {
	Enabled() bool
	WriteReport(ctx context.Context, title, data string) (string, error)
}

type Service struct {
	cfg    *config.Config
	Client llmclient.Client
}

func New(cfg *config.Config, client llmclient.Client) Writer {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.LLM.Enabled && s.cfg.LLM.URL != ""
}

// WriteReport envia os dados agregados com o prompt fixo e devolve o markdown gerado
func (s *Service) WriteReport(ctx context.Context, title, data string) (string, error) {
	if !s.Enabled() {
		return "", ErrDisabled
	}

	resp, err := s.Client.ChatCompletion(ctx, llmclient.ChatRequest{
		Model:       s.cfg.LLM.Model,
		Temperature: 0.3,
		Messages: []llmclient.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Título do relatório: " + title + "\n\nDados:\n" + data},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}
