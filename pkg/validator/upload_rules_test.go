package validator_test

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputfilter/pkg/upload"
	"github.com/dmitrymomot/inputfilter/pkg/validator"
)

func TestUploadFile(t *testing.T) {
	v := validator.NewUploadFile()

	t.Run("accepts successful upload", func(t *testing.T) {
		assert.True(t, v.IsValid(upload.Descriptor{TempPath: "/tmp/a", OriginalName: "a.txt"}, nil))
		assert.True(t, v.IsValid(&multipart.FileHeader{Filename: "a.txt", Size: 3}, nil))
	})

	t.Run("maps transport errors to codes", func(t *testing.T) {
		cases := map[upload.ErrorCode]string{
			upload.ErrIniSize:    validator.UploadFileErrorIniSize,
			upload.ErrPartial:    validator.UploadFileErrorPartial,
			upload.ErrNoFile:     validator.UploadFileErrorNoFile,
			upload.ErrorCode(99): validator.UploadFileErrorUnknown,
		}
		for code, msgCode := range cases {
			assert.False(t, v.IsValid(upload.Descriptor{ErrorCode: code}, nil))
			assert.True(t, v.Messages().Has(msgCode), msgCode)
		}
	})

	t.Run("ok status without source", func(t *testing.T) {
		assert.False(t, v.IsValid(upload.Descriptor{OriginalName: "a.txt"}, nil))
		assert.True(t, v.Messages().Has(validator.UploadFileErrorNoFile))
	})

	t.Run("rejects non upload values", func(t *testing.T) {
		assert.False(t, v.IsValid("a.txt", nil))
		assert.True(t, v.Messages().Has(validator.UploadFileErrorInvalid))
	})
}

func TestFileSize(t *testing.T) {
	v, err := validator.NewFileSize(10, 100)
	require.NoError(t, err)

	assert.True(t, v.IsValid(upload.Descriptor{Size: 50}, nil))
	assert.False(t, v.IsValid(upload.Descriptor{Size: 101}, nil))
	assert.True(t, v.Messages().Has(validator.FileSizeTooBig))
	assert.False(t, v.IsValid(upload.Descriptor{Size: 5}, nil))
	assert.True(t, v.Messages().Has(validator.FileSizeTooSmall))

	_, err = validator.NewFileSize(100, 10)
	assert.ErrorIs(t, err, validator.ErrInvalidConfig)
}

func TestFileExtension(t *testing.T) {
	v := validator.NewFileExtension(".PNG", "jpg")
	assert.True(t, v.IsValid(upload.Descriptor{OriginalName: "photo.png"}, nil))
	assert.True(t, v.IsValid(map[string]any{"name": "photo.JPG", "tmp_name": "/tmp/x"}, nil))
	assert.False(t, v.IsValid(upload.Descriptor{OriginalName: "photo.gif"}, nil))
	assert.True(t, v.Messages().Has(validator.FileExtensionFalse))
}

func TestFileMediaType(t *testing.T) {
	v := validator.NewFileMediaType("image/*", "application/pdf")
	assert.True(t, v.IsValid(upload.Descriptor{MediaType: "image/png"}, nil))
	assert.True(t, v.IsValid(upload.Descriptor{MediaType: "application/pdf"}, nil))
	assert.False(t, v.IsValid(upload.Descriptor{MediaType: "text/plain"}, nil))
	assert.True(t, v.Messages().Has(validator.FileMediaTypeFalse))
}
