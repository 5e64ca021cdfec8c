package awsclient

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/rs/zerolog/log"

	"todos/config"
)

// LoadConfig resolves the shared AWS configuration. Static credentials are
// used when both key parts are configured, otherwise the default chain
// (environment, shared files, instance role) applies.
func LoadConfig(config *config.Config) (aws.Config, error) {
	opts := []func(*awsConfig.LoadOptions) error{
		awsConfig.WithRegion(config.AWS.Region),
	}

	if config.AWS.AccessKeyID != "" && config.AWS.SecretAccessKey != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AWS.AccessKeyID, config.AWS.SecretAccessKey, ""),
		))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("error loading AWS configuration: %w", err)
	}

	log.Info().Str("region", cfg.Region).Bool("custom_endpoint", config.AWS.Endpoint != "").Msg("AWS configuration loaded")

	return cfg, nil
}
