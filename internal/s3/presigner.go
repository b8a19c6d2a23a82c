package s3

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds everything needed to presign avatar uploads against an
// S3-compatible store (MinIO in development).
type Config struct {
	Endpoint     string
	Region       string
	BucketName   string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

type AvatarPresigner struct {
	presignClient *s3.PresignClient
	BucketName    string
	Endpoint      string
}

func NewAvatarPresigner(cfg Config) (*AvatarPresigner, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               cfg.Endpoint,
			SigningRegion:     region,
			HostnameImmutable: true,
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(
		context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)

	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &AvatarPresigner{
		presignClient: s3.NewPresignClient(s3Client),
		BucketName:    cfg.BucketName,
		Endpoint:      cfg.Endpoint,
	}, nil
}

func (p *AvatarPresigner) PresignedUploadURL(objectKey string) (string, error) {
	request, err := p.presignClient.PresignPutObject(
		context.TODO(),
		&s3.PutObjectInput{
			Bucket: aws.String(p.BucketName),
			Key:    aws.String(objectKey),
		},
		func(opts *s3.PresignOptions) {
			opts.Expires = 15 * time.Minute
		},
	)

	if err != nil {
		return "", err
	}

	return request.URL, nil
}

// ObjectURL is the address the avatar will be served from once uploaded.
func (p *AvatarPresigner) ObjectURL(objectKey string) string {
	return p.Endpoint + "/" + p.BucketName + "/" + objectKey
}
