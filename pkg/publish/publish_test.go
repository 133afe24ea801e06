package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/htmlify/pkg/markup"
)

func TestCleanKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"index.html", "index.html", false},
		{"/a/b.html", "a/b.html", false},
		{"a\\b.html", "a/b.html", false},
		{"a//b.html", "a/b.html", false},
		{"", "", true},
		{"/", "", true},
		{"../escape.html", "", true},
		{"a/../../b", "", true},
		{"a..b.html", "a..b.html", false},
	}

	for _, tt := range tests {
		got, err := cleanKey(tt.key)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidKey, "key %q", tt.key)
			continue
		}
		require.NoError(t, err, "key %q", tt.key)
		assert.Equal(t, tt.want, got)
	}
}

func TestDiskStorePublish(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewDiskStore(filepath.Join(dir, "out"))
	require.NoError(t, err)

	node := markup.El("div", markup.Attr("class", "box"), markup.Text("hi"))
	loc, err := Publish(context.Background(), store, "pages/box.html", node, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "pages", "box.html"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, `<div class="box"> hi </div>`, string(data))

	compact := markup.NewRenderer(markup.RendererConfig{Format: markup.FormatCompact})
	loc, err = Publish(context.Background(), store, "compact.html", node, compact)
	require.NoError(t, err)
	data, err = os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, `<div class="box">hi</div>`, string(data))
}

func TestDiskStoreRejects(t *testing.T) {
	t.Parallel()

	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../x.html", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidKey)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Put(ctx, "x.html", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	data, _ := io.ReadAll(params.Body)
	f.body = string(data)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3StorePut(t *testing.T) {
	t.Parallel()

	client := &fakeS3{}
	store := NewS3StoreWithClient(client, "site", "preview/")

	loc, err := Publish(context.Background(), store, "/index.html", markup.El("p", "x"), nil)
	require.NoError(t, err)

	assert.Equal(t, "s3://site/preview/index.html", loc)
	assert.Equal(t, "site", aws.ToString(client.input.Bucket))
	assert.Equal(t, "preview/index.html", aws.ToString(client.input.Key))
	assert.Equal(t, ContentType, aws.ToString(client.input.ContentType))
	assert.Equal(t, int64(len("<p > x </p>")), aws.ToInt64(client.input.ContentLength))
	assert.Equal(t, "<p > x </p>", client.body)
}

func TestS3StorePrefixSeparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix  string
		wantKey string
	}{
		{"", "index.html"},
		{"v1", "v1/index.html"},
		{"v1/", "v1/index.html"},
		{"/v1//", "v1/index.html"},
		{"a/b", "a/b/index.html"},
		{"/", "index.html"},
	}

	for _, tt := range tests {
		client := &fakeS3{}
		store := NewS3StoreWithClient(client, "site", tt.prefix)

		loc, err := store.Put(context.Background(), "index.html", []byte("x"))
		require.NoError(t, err, "prefix %q", tt.prefix)
		assert.Equal(t, tt.wantKey, aws.ToString(client.input.Key), "prefix %q", tt.prefix)
		assert.Equal(t, "s3://site/"+tt.wantKey, loc, "prefix %q", tt.prefix)
	}
}

func TestS3StoreUploadFailed(t *testing.T) {
	t.Parallel()

	store := NewS3StoreWithClient(&fakeS3{err: errors.New("denied")}, "site", "")
	_, err := store.Put(context.Background(), "a.html", []byte("x"))
	require.ErrorIs(t, err, ErrUploadFailed)
	assert.Contains(t, err.Error(), "denied")
}

func TestNewS3StoreRequiresBucket(t *testing.T) {
	t.Parallel()

	_, err := NewS3Store(S3Config{})
	require.Error(t, err)

	store, err := NewS3Store(S3Config{Bucket: "b", Endpoint: "http://localhost:9000", PathStyle: true, AccessKey: "k", SecretKey: "s"})
	require.NoError(t, err)
	assert.NotNil(t, store)
}
