package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"recipe-share/internal/testutil"
	"recipe-share/internal/utils"

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
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestUploadFile(t *testing.T) {
	putter := &fakePutter{}
	store := newAwsS3(putter, "recipes", "ap-southeast-1")
	file := testutil.FileHeader(t, "image", "Cover.PNG", "image/png", []byte("png-bytes"))

	key, err := store.UploadFile(context.Background(), "abc", file, "covers", AllowImage...)
	require.NoError(t, err)

	assert.Equal(t, "covers/abc.png", key)
	assert.Equal(t, "recipes", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "covers/abc.png", aws.ToString(putter.input.Key))
	assert.Equal(t, "image/png", aws.ToString(putter.input.ContentType))
	assert.Equal(t, []byte("png-bytes"), putter.body)
	assert.Equal(t, "https://recipes.s3.ap-southeast-1.amazonaws.com/covers/abc.png", store.GetPublicLinkKey(key))
}

func TestUploadFileRejectsExtension(t *testing.T) {
	putter := &fakePutter{}
	store := newAwsS3(putter, "recipes", "ap-southeast-1")
	file := testutil.FileHeader(t, "image", "notes.txt", "text/plain", []byte("hi"))

	_, err := store.UploadFile(context.Background(), "abc", file, "covers", AllowImage...)
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
	assert.Nil(t, putter.input)
}

func TestUploadFilePutError(t *testing.T) {
	putter := &fakePutter{err: errors.New("boom")}
	store := newAwsS3(putter, "recipes", "ap-southeast-1")
	file := testutil.FileHeader(t, "image", "cover.jpg", "", []byte("jpg"))

	_, err := store.UploadFile(context.Background(), "abc", file, "covers", AllowImage...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "covers/abc.jpg")
	assert.Equal(t, "application/octet-stream", aws.ToString(putter.input.ContentType))
}

func TestNewAwsS3RequiresBucket(t *testing.T) {
	_, err := NewAwsS3(context.Background(), utils.Config{})
	assert.ErrorIs(t, err, ErrBucketNotSet)
}
