package service

import (
	"Lighthouse/internal/api/config"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func newMediaFixture() (*mediaServiceImpl, *fakeStorage, *fakeRegistry) {
	storage, registry := newFakeStorage(), newFakeRegistry()
	svc := NewMediaService(storage, registry, config.UploadConfig{
		ImageMaxSize: 64,
		FileMaxSize:  128,
	}).(*mediaServiceImpl)
	svc.now = (&fakeClock{now: t0}).Now
	return svc, storage, registry
}

func TestUploadImage(t *testing.T) {
	svc, storage, registry := newMediaFixture()

	res, err := svc.UploadImage(context.Background(), bytes.NewReader(pngHeader), "logo.PNG", int64(len(pngHeader)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.ImageURL, fakeBaseURL+"/post-images/"))
	assert.True(t, strings.HasSuffix(res.ImageURL, ".png"))

	key, ok := storage.ObjectKey(res.ImageURL)
	require.True(t, ok)
	assert.Equal(t, "image/png", storage.objects[key].ContentType)

	meta, ok := registry.pending[key]
	require.True(t, ok)
	assert.Equal(t, res.ImageURL, meta.URL)
	assert.Equal(t, t0.Unix(), meta.CreatedAt)
}

func TestUploadImage_Rejections(t *testing.T) {
	svc, storage, _ := newMediaFixture()

	_, err := svc.UploadImage(context.Background(), strings.NewReader("plain text"), "a.png", 10)
	assert.ErrorIs(t, err, ErrFileNotSupported)

	_, err = svc.UploadImage(context.Background(), bytes.NewReader(pngHeader), "a.png", 65)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	storage.failUpload = true
	_, err = svc.UploadImage(context.Background(), bytes.NewReader(pngHeader), "a.png", int64(len(pngHeader)))
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestUploadFile(t *testing.T) {
	svc, storage, registry := newMediaFixture()
	body := "quarterly numbers"

	res, err := svc.UploadFile(context.Background(), strings.NewReader(body), "%EB%B3%B4%EA%B3%A0%EC%84%9C.txt", int64(len(body)))
	require.NoError(t, err)
	assert.Equal(t, "보고서.txt", res.OriginalName)
	assert.Equal(t, "https://assets.example.org/post-files/%EB%B3%B4%EA%B3%A0%EC%84%9C.txt", res.FileURL)

	opts := storage.objects["post-files/보고서.txt"]
	assert.Equal(t, "attachment; filename*=UTF-8''%EB%B3%B4%EA%B3%A0%EC%84%9C.txt", opts.ContentDisposition)
	assert.Contains(t, registry.pending, "post-files/보고서.txt")

	_, err = svc.UploadFile(context.Background(), strings.NewReader(body), "big.bin", 129)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.UploadFile(context.Background(), strings.NewReader(body), "", int64(len(body)))
	assert.ErrorIs(t, err, ErrParamInvalid)
}
