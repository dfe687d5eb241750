package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/lshigami/quizforge/config"
	"github.com/lshigami/quizforge/internal/ingest"
	"github.com/rs/zerolog/log"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	bedrockMaxTokens = 2000
	defaultAWSRegion = "us-east-1"
	jsonContentType  = "application/json"
)

// BedrockAPI is the subset of the bedrockruntime client used here.
type BedrockAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockClient invokes an Anthropic model hosted on AWS Bedrock. It is the
// primary quiz generation backend.
type BedrockClient struct {
	api     BedrockAPI
	modelID string
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// NewBedrockClient loads the default AWS credential chain. The SDK retryer is
// disabled so throttling reaches the caller on the first 429.
func NewBedrockClient(cfg *config.Config) (*BedrockClient, error) {
	if cfg.AWS.ModelID == "" {
		log.Warn().Msg("BEDROCK_MODEL_ID is not set. Bedrock generation will be non-functional.")
	}
	region := cfg.AWS.Region
	if region == "" {
		region = defaultAWSRegion
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	api := bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		o.Retryer = aws.NopRetryer{}
	})
	return NewBedrockClientWithAPI(api, cfg.AWS.ModelID), nil
}

func NewBedrockClientWithAPI(api BedrockAPI, modelID string) *BedrockClient {
	return &BedrockClient{api: api, modelID: modelID}
}

func (c *BedrockClient) Generate(ctx context.Context, instruction string) (string, error) {
	if c.modelID == "" {
		return "", errors.New("bedrock model id not configured")
	}
	body, err := json.Marshal(anthropicRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        bedrockMaxTokens,
		Messages:         []anthropicMessage{{Role: "user", Content: instruction}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal bedrock request: %w", err)
	}

	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String(jsonContentType),
		Accept:      aws.String(jsonContentType),
		Body:        body,
	})
	if err != nil {
		if isBedrockRateLimit(err) {
			return "", fmt.Errorf("bedrock: %w: %w", ingest.ErrRateLimited, err)
		}
		return "", fmt.Errorf("bedrock invoke model %s: %w", c.modelID, err)
	}

	var resp anthropicResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("decode bedrock response: %w", err)
	}
	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "" || block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("bedrock returned no text content")
	}
	return sb.String(), nil
}

func isBedrockRateLimit(err error) bool {
	var throttled *types.ThrottlingException
	if errors.As(err, &throttled) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusTooManyRequests
}
