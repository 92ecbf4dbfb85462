package openai

import (
	"github.com/seoscope/seoscope/internal/utils"
	"github.com/seoscope/seoscope/providers/ai"
)

/*
	CHAT COMPLETIONS API - INPUT
*/

// chatCompletionRequest represents the /v1/chat/completions request format
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"` // system, user, assistant
	Content string `json:"content"`
}

/*
	CHAT COMPLETIONS API - OUTPUT
*/

// chatCompletionResponse represents the /v1/chat/completions response format
type chatCompletionResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

/*
	CONVERSIONS
*/

// requestFromGeneric converts an ai.ChatRequest into the chat completions
// wire format. The system prompt, when present, becomes the first message.
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	messages := make([]chatMessage, 0, len(request.Messages)+1)
	if request.SystemPrompt != "" {
		messages = append(messages, chatMessage{Role: string(ai.RoleSystem), Content: request.SystemPrompt})
	}
	for _, m := range request.Messages {
		messages = append(messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	out := chatCompletionRequest{
		Model:    request.Model,
		Messages: messages,
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature != 0 {
			out.Temperature = utils.Ptr(cfg.Temperature)
		}
		if cfg.TopP != 0 {
			out.TopP = utils.Ptr(cfg.TopP)
		}
		if cfg.MaxTokens != 0 {
			out.MaxTokens = utils.Ptr(cfg.MaxTokens)
		}
	}

	return out
}

// responseToGeneric converts a chat completions response into an
// ai.ChatResponse, taking the first choice as the response content.
func responseToGeneric(resp chatCompletionResponse) *ai.ChatResponse {
	choice := resp.Choices[0]
	return &ai.ChatResponse{
		Id:           resp.ID,
		Model:        resp.Model,
		Object:       resp.Object,
		Created:      resp.Created,
		Content:      choice.Message.Content,
		FinishReason: choice.FinishReason,
		Usage: &ai.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
}
