package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Generator — провайдер генерации текста. Выделен в интерфейс, чтобы в тестах
// подменять сетевой клиент заглушкой.
type Generator interface {
	Generate(ctx context.Context, topic string) (string, error)
}

type OpenRouterService struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

func NewOpenRouterService(apiKey, baseURL, model string, timeout time.Duration) *OpenRouterService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenRouterService{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		// Явный таймаут: зависший провайдер должен превратиться в ошибку,
		// а не в вечно висящий запрос.
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate отправляет пару промптов (system + user) и возвращает сырой текст
// первого варианта ответа. Никаких ретраев и кэширования — каждый вызов
// это свежий поход к провайдеру.
func (s *OpenRouterService) Generate(ctx context.Context, topic string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: s.Model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: fmt.Sprintf(
					`You are an expert SEO content writer. Generate a comprehensive, SEO-optimized article about %q. The article should be well-structured with HTML formatting (h2, h3, p, ul, ol tags), include a meta description and Open Graph tags.`,
					topic),
			},
			{
				Role: "user",
				Content: fmt.Sprintf(
					`Write an SEO-optimized article about %q. Return a JSON object with the following fields: - title (string) - slug (string) - meta (object with description and keywords[]) - content (HTML formatted string) - og (object with title, description, image URL) - category (string) - readTime (string like "5 min read")`,
					topic),
			},
		},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("запрос к провайдеру генерации: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("чтение ответа провайдера: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("провайдер генерации вернул статус %d: %s", resp.StatusCode, string(body))
	}

	var res chatCompletionResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("декодирование ответа провайдера: %w", err)
	}
	if res.Error != nil {
		return "", fmt.Errorf("провайдер генерации: %s", res.Error.Message)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("провайдер генерации вернул пустой список вариантов")
	}

	return res.Choices[0].Message.Content, nil
}
