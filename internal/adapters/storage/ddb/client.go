package ddb

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type ClientConfig struct {
	Region          string
	Endpoint        string // DynamoDB Local u otro endpoint; vacío = AWS
	StaticCreds     bool
	AccessKeyID     string
	SecretAccessKey string
}

// NewClient arma el cliente con la cadena de credenciales por defecto o con
// credenciales estáticas.
func NewClient(ctx context.Context, c ClientConfig) (*dynamodb.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(c.Region),
	}
	if c.StaticCreds {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

// EndpointFromContactPoints toma el primer contact point. Sin esquema y sin
// puerto se asume el endpoint público de AWS.
func EndpointFromContactPoints(points []string, port int) string {
	if len(points) == 0 {
		return ""
	}
	cp := strings.TrimSpace(points[0])
	switch {
	case strings.Contains(cp, "://"):
		return cp
	case port > 0:
		return fmt.Sprintf("http://%s:%d", cp, port)
	default:
		return ""
	}
}
