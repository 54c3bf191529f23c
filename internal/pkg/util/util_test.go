package util

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDTO struct {
	Name  string `json:"name" validate:"min=1,max=5"`
	Email string `json:"email" validate:"email"`
}

func TestValidateDTO_UsesJSONNames(t *testing.T) {
	err := ValidateDTO(&sampleDTO{Name: "", Email: "a@b.co"})
	require.Error(t, err)

	var vErrs validator.ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	assert.Equal(t, "name", vErrs[0].Field())
	assert.Equal(t, "min", vErrs[0].Tag())

	assert.NoError(t, ValidateDTO(&sampleDTO{Name: "kim", Email: "kim@example.org"}))
}

func TestTrimFields(t *testing.T) {
	a, b := "  hello ", "\tworld\n"
	TrimFields(&a, &b, nil)
	assert.Equal(t, "hello", a)
	assert.Equal(t, "world", b)
}

func TestGetSafeContentType_ResetsReader(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	r := bytes.NewReader(png)

	ct, err := GetSafeContentType(r)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.True(t, IsImage(ct))

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, png, rest)
}

func TestGetSafeContentType_Text(t *testing.T) {
	ct, err := GetSafeContentType(strings.NewReader("just some text"))
	require.NoError(t, err)
	assert.False(t, IsImage(ct))
}

func TestImageObjectName(t *testing.T) {
	name := ImageObjectName("photo.JPG")
	assert.True(t, strings.HasPrefix(name, "post-images/"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotEqual(t, name, ImageObjectName("photo.JPG"))

	assert.NotContains(t, ImageObjectName("noext"), ".")
}

func TestFileObjectName(t *testing.T) {
	key, name, err := FileObjectName("2024%20%EC%82%AC%EC%97%85%EA%B3%84%ED%9A%8D.pdf")
	require.NoError(t, err)
	assert.Equal(t, "2024 사업계획.pdf", name)
	assert.Equal(t, "post-files/2024 사업계획.pdf", key)

	key, _, err = FileObjectName("a+b.txt")
	require.NoError(t, err)
	assert.Equal(t, "post-files/a+b.txt", key)

	key, _, err = FileObjectName("..%2F..%2Fetc%2Fpasswd")
	require.NoError(t, err)
	assert.Equal(t, "post-files/passwd", key)

	_, _, err = FileObjectName("   ")
	assert.ErrorIs(t, err, ErrInvalidFileName)
}

func TestAttachmentDisposition(t *testing.T) {
	assert.Equal(t, "attachment; filename*=UTF-8''annual%20report.pdf", AttachmentDisposition("annual report.pdf"))
	assert.Equal(t, "attachment; filename*=UTF-8''%EB%B3%B4%EA%B3%A0.pdf", AttachmentDisposition("보고.pdf"))
}
