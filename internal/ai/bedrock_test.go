// internal/ai/bedrock_test.go
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/bedrockruntime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInvoker struct {
	input *bedrockruntime.InvokeModelInput
	body  string
	err   error
}

func (f *fakeInvoker) InvokeModelWithContext(ctx aws.Context, input *bedrockruntime.InvokeModelInput, opts ...request.Option) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func TestBedrockClient_GenerateRecipe(t *testing.T) {
	invoker := &fakeInvoker{
		body: `{"content":[{"type":"text","text":"` + "```json\\n" +
			`{\"recipeName\":\"Broccoli Toast\",\"description\":\"Green.\",\"ingredients\":[\"Broccoli\",\"Bread\"],\"instructions\":[\"Toast\"]}` +
			"\\n```" + `"}],"stop_reason":"end_turn"}`,
	}
	client := newBedrockClient(invoker, "anthropic.test", 256, nil)

	recipe, err := client.GenerateRecipe(context.Background(), "use broccoli and bread")
	require.NoError(t, err)
	assert.Equal(t, "Broccoli Toast", recipe.RecipeName)
	assert.Equal(t, []string{"Broccoli", "Bread"}, recipe.Ingredients)

	require.NotNil(t, invoker.input)
	assert.Equal(t, "anthropic.test", aws.StringValue(invoker.input.ModelId))

	var sent bedrockRequest
	require.NoError(t, json.Unmarshal(invoker.input.Body, &sent))
	assert.Equal(t, bedrockAnthropicVersion, sent.AnthropicVersion)
	assert.Equal(t, 256, sent.MaxTokens)
	assert.Equal(t, "use broccoli and bread", sent.Messages[0].Content[0].Text)
	assert.NotEmpty(t, sent.System)
}

func TestBedrockClient_InvokeError(t *testing.T) {
	client := newBedrockClient(&fakeInvoker{err: errors.New("throttled")}, "anthropic.test", 256, nil)

	_, err := client.GenerateRecipe(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestBedrockClient_EmptyCompletion(t *testing.T) {
	client := newBedrockClient(&fakeInvoker{body: `{"content":[],"stop_reason":"max_tokens"}`}, "anthropic.test", 256, nil)

	_, err := client.GenerateRecipe(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrInvalidRecipe)
}
