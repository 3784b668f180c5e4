package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"travel-api/pkg/resource"
)

// NewSqsClient builds an SQS client, pointing it at a LocalStack endpoint
// when one is configured.
func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(o *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
