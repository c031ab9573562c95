package llm

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"fencebot/internal/metrics"
	"fencebot/internal/utils"
)

const (
	pythonQuestion = "Does the following text look like Python source code? Answer with exactly YES or NO."
	replQuestion   = "Does the following text look like a transcript of an interactive Python (REPL or IPython) session? Answer with exactly YES or NO."
)

// Classifier asks an OpenAI chat model whether text looks like Python. It
// implements the same contract as the heuristic detector; any API failure is
// treated as "not code" so the advisor stays silent rather than guessing.
type Classifier struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewClassifier(apiKey, model string) *Classifier {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Classifier{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: 10 * time.Second,
	}
}

func (c *Classifier) LooksLikePython(content string) bool {
	return c.verdict(pythonQuestion, content)
}

func (c *Classifier) LooksLikeREPL(content string) bool {
	return c.verdict(replQuestion, content)
}

func (c *Classifier) verdict(question, content string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: question},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		MaxTokens: 3,
	}
	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		utils.Logger.Error().Err(err).Str("module", "llm").Msg("Failed to get verdict from OpenAI")
		metrics.DetectorErrorsTotal.WithLabelValues("openai").Inc()
		return false
	}
	if len(resp.Choices) == 0 {
		utils.Logger.Error().Str("module", "llm").Msg("No choices returned from OpenAI API")
		metrics.DetectorErrorsTotal.WithLabelValues("openai").Inc()
		return false
	}

	answer := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	utils.Logger.Debug().Str("module", "llm").Msgf("OpenAI verdict: %s", answer)
	return strings.HasPrefix(answer, "YES")
}
