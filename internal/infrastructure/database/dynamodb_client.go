package database

import (
	"context"
	"fmt"

	"tracker_orders/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the aws config section.
//
// Static credentials are used when access_key_id is set (DynamoDB Local does
// not validate them but the SDK requires some); otherwise the default AWS
// credential chain applies. endpoint is optional, e.g. http://dynamodb:8000.
func ConnectDynamoDB(ctx context.Context, cfg config.Config) (*dynamodb.Client, error) {
	awsCfg, err := newAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("dynamodb config: %w", err)
	}

	var opts []func(*dynamodb.Options)
	if endpoint := cfg.AWS.Endpoint; endpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}
	log.Infof("dynamodb client ready region=%s endpoint=%q table=%s", cfg.AWS.Region, cfg.AWS.Endpoint, cfg.AWS.OrdersTable)
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

func newAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWS.Region),
	}
	if cfg.AWS.AccessKeyID != "" {
		creds := credentials.NewStaticCredentialsProvider(cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey, cfg.AWS.SessionToken)
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(creds))
	}
	return awsconfig.LoadDefaultConfig(ctx, loadOpts...)
}
