//go:build unit

package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"grooming-salon/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	putter := &fakePutter{}
	store := NewS3Store(putter, "salon-exports", slog.Default())

	err := store.Put(context.Background(), "revenue/2024/01/100000_revenue.csv", []byte("날짜,매출,예약 수\n"), "text/csv")

	require.NoError(t, err)
	assert.True(t, store.Enabled())
	assert.Equal(t, "salon-exports", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "revenue/2024/01/100000_revenue.csv", aws.ToString(putter.input.Key))
	assert.Equal(t, "text/csv", aws.ToString(putter.input.ContentType))
	assert.Equal(t, "날짜,매출,예약 수\n", string(putter.body))
}

func TestS3Store_PutFailure(t *testing.T) {
	store := NewS3Store(&fakePutter{err: errors.New("access denied")}, "b", slog.Default())

	err := store.Put(context.Background(), "k", []byte("x"), "text/csv")
	assert.ErrorContains(t, err, "s3://b/k")
}

func TestDisabledStore(t *testing.T) {
	var store DisabledStore
	assert.False(t, store.Enabled())
	assert.Error(t, store.Put(context.Background(), "k", nil, "text/csv"))
}

func TestNewS3Client(t *testing.T) {
	client := NewS3Client(config.ExportConfig{
		Region:    "ap-northeast-2",
		Endpoint:  "http://localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
	})

	opts := client.Options()
	assert.Equal(t, "ap-northeast-2", opts.Region)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
}
