package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/wayfind-dev/wayfind/pkg/routes"
)

// S3Source enumerates route files stored under a prefix in an S3
// bucket, for projects that publish their route manifests remotely.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	src, err := source.NewS3Source(context.Background(), s3.NewFromConfig(cfg), "my-bucket", "routes/")
type S3Source struct {
	client *s3.Client
	bucket string
	prefix string
	keys   []string
}

// NewS3Source lists the bucket prefix once and snapshots the route
// file keys. Object bodies are only fetched later, through Load.
func NewS3Source(ctx context.Context, client *s3.Client, bucket, prefix string) (*S3Source, error) {
	src := &S3Source{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}

	paginator := s3.NewListObjectsV2Paginator(client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("source: listing s3://%s/%s: %w", bucket, prefix, err)
		}
		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			rel := strings.TrimPrefix(*obj.Key, prefix)
			rel = strings.TrimPrefix(rel, "/")
			if rel == "" || !IsRouteFile(rel) {
				continue
			}
			src.keys = append(src.keys, "./"+rel)
		}
	}

	return src, nil
}

// Keys implements routes.Context.
func (s *S3Source) Keys() []string { return s.keys }

// Load fetches the object behind key.
func (s *S3Source) Load(key string) (routes.Module, error) {
	objectKey := s.prefix
	if objectKey != "" && !strings.HasSuffix(objectKey, "/") {
		objectKey += "/"
	}
	objectKey += strings.TrimPrefix(key, "./")

	result, err := s.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, fmt.Errorf("source: loading s3://%s/%s: %w", s.bucket, objectKey, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("source: reading s3://%s/%s: %w", s.bucket, objectKey, err)
	}

	return routes.Module{
		"path":   fmt.Sprintf("s3://%s/%s", s.bucket, objectKey),
		"source": string(data),
	}, nil
}
