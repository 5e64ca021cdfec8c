package dynamodb

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"todos/config"
)

// New creates the DynamoDB client. A configured endpoint (DynamoDB Local,
// LocalStack) overrides the regional one.
func New(config *config.Config, awsCfg aws.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if config.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.AWS.Endpoint)
		}
	})
}
