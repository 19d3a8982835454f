// internal/ai/bedrock.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/grocer/internal/models"
)

const bedrockAnthropicVersion = "bedrock-2023-05-31"

// modelInvoker is the part of the bedrockruntime client BedrockClient uses.
type modelInvoker interface {
	InvokeModelWithContext(ctx aws.Context, input *bedrockruntime.InvokeModelInput, opts ...request.Option) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockClient asks an Anthropic model hosted on Bedrock for a JSON recipe.
type BedrockClient struct {
	runtime   modelInvoker
	modelID   string
	maxTokens int
	logger    *logrus.Entry
}

type bedrockMessage struct {
	Role    string                `json:"role"`
	Content []bedrockContentBlock `json:"content"`
}

type bedrockContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type bedrockRequest struct {
	AnthropicVersion string           `json:"anthropic_version"`
	MaxTokens        int              `json:"max_tokens"`
	System           string           `json:"system,omitempty"`
	Messages         []bedrockMessage `json:"messages"`
}

type bedrockResponse struct {
	Content    []bedrockContentBlock `json:"content"`
	StopReason string                `json:"stop_reason"`
}

// NewBedrockClient builds a session the same way the rest of the AWS wiring does:
// static credentials when both keys are given, the default chain otherwise.
func NewBedrockClient(region, accessKeyID, secretAccessKey, modelID string, maxTokens int, logger *logrus.Logger) (*BedrockClient, error) {
	awsConfig := &aws.Config{Region: aws.String(region)}
	if accessKeyID != "" && secretAccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(accessKeyID, secretAccessKey, "")
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return newBedrockClient(bedrockruntime.New(sess), modelID, maxTokens, logger), nil
}

func newBedrockClient(runtime modelInvoker, modelID string, maxTokens int, logger *logrus.Logger) *BedrockClient {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &BedrockClient{
		runtime:   runtime,
		modelID:   modelID,
		maxTokens: maxTokens,
		logger:    logger.WithFields(logrus.Fields{"provider": "bedrock", "model": modelID}),
	}
}

func (c *BedrockClient) GenerateRecipe(ctx context.Context, prompt string) (models.Recipe, error) {
	body, err := json.Marshal(bedrockRequest{
		AnthropicVersion: bedrockAnthropicVersion,
		MaxTokens:        c.maxTokens,
		System:           recipeJSONInstruction,
		Messages: []bedrockMessage{{
			Role:    "user",
			Content: []bedrockContentBlock{{Type: "text", Text: prompt}},
		}},
	})
	if err != nil {
		return models.Recipe{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.WithField("prompt_length", len(prompt)).Debug("Sending recipe request")

	out, err := c.runtime.InvokeModelWithContext(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return models.Recipe{}, fmt.Errorf("bedrock invoke failed: %w", err)
	}

	var resp bedrockResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return models.Recipe{}, fmt.Errorf("failed to parse response: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return models.Recipe{}, fmt.Errorf("%w: empty completion (stop_reason %s)", ErrInvalidRecipe, resp.StopReason)
	}

	return parseRecipe(text.String())
}
