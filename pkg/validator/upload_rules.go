package validator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/inputfilter/pkg/upload"
)

const (
	UploadFileErrorIniSize   = "fileUploadFileErrorIniSize"
	UploadFileErrorFormSize  = "fileUploadFileErrorFormSize"
	UploadFileErrorPartial   = "fileUploadFileErrorPartial"
	UploadFileErrorNoFile    = "fileUploadFileErrorNoFile"
	UploadFileErrorNoTmpDir  = "fileUploadFileErrorNoTmpDir"
	UploadFileErrorCantWrite = "fileUploadFileErrorCantWrite"
	UploadFileErrorExtension = "fileUploadFileErrorExtension"
	UploadFileErrorUnknown   = "fileUploadFileErrorUnknown"
	UploadFileErrorInvalid   = "fileUploadFileErrorInvalid"

	FileSizeTooBig   = "fileSizeTooBig"
	FileSizeTooSmall = "fileSizeTooSmall"

	FileExtensionFalse = "fileExtensionFalse"

	FileMediaTypeFalse = "fileMimeTypeFalse"
)

var uploadErrors = map[upload.ErrorCode][2]string{
	upload.ErrIniSize:   {UploadFileErrorIniSize, "File exceeds the defined ini size"},
	upload.ErrFormSize:  {UploadFileErrorFormSize, "File exceeds the defined form size"},
	upload.ErrPartial:   {UploadFileErrorPartial, "File was only partially uploaded"},
	upload.ErrNoFile:    {UploadFileErrorNoFile, "File was not uploaded"},
	upload.ErrNoTmpDir:  {UploadFileErrorNoTmpDir, "No temporary directory was found for file"},
	upload.ErrCantWrite: {UploadFileErrorCantWrite, "File can't be written"},
	upload.ErrExtension: {UploadFileErrorExtension, "A server extension stopped the file upload"},
}

func descriptor(value any) (*upload.Descriptor, bool) {
	d, err := upload.Normalize(value)
	if err != nil || d == nil {
		return nil, false
	}
	return d, true
}

// UploadFile checks the transport status of an upload.
type UploadFile struct {
	Base
}

func NewUploadFile() *UploadFile {
	return &UploadFile{}
}

func (v *UploadFile) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	d, ok := descriptor(value)
	if !ok {
		return v.Fail(UploadFileErrorInvalid, "Invalid type given. Upload expected", "validation.upload_invalid", nil)
	}
	if d.ErrorCode == upload.ErrOK {
		if d.Header() == nil && d.TempPath == "" {
			return v.Fail(UploadFileErrorNoFile, "File was not uploaded", "validation.upload_no_file", nil)
		}
		return true
	}
	if e, ok := uploadErrors[d.ErrorCode]; ok {
		return v.Fail(e[0], e[1], "validation.upload_error", map[string]any{"code": int(d.ErrorCode)})
	}
	return v.Fail(UploadFileErrorUnknown, "Unknown error while uploading file", "validation.upload_error",
		map[string]any{"code": int(d.ErrorCode)})
}

// FileSize checks the upload size in bytes. Zero bounds are ignored.
type FileSize struct {
	Base
	Min int64
	Max int64
}

func NewFileSize(min, max int64) (*FileSize, error) {
	if min < 0 || max < 0 || (max > 0 && max < min) {
		return nil, fmt.Errorf("%w: file size min %d, max %d", ErrInvalidConfig, min, max)
	}
	return &FileSize{Min: min, Max: max}, nil
}

func (v *FileSize) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	d, ok := descriptor(value)
	if !ok {
		return v.Fail(UploadFileErrorInvalid, "Invalid type given. Upload expected", "validation.upload_invalid", nil)
	}
	if v.Max > 0 && d.Size > v.Max {
		return v.Fail(FileSizeTooBig,
			fmt.Sprintf("Maximum allowed size for file is '%d' bytes but '%d' detected", v.Max, d.Size),
			"validation.file_too_big", map[string]any{"max": v.Max, "size": d.Size})
	}
	if v.Min > 0 && d.Size < v.Min {
		return v.Fail(FileSizeTooSmall,
			fmt.Sprintf("Minimum expected size for file is '%d' bytes but '%d' detected", v.Min, d.Size),
			"validation.file_too_small", map[string]any{"min": v.Min, "size": d.Size})
	}
	return true
}

// FileExtension accepts uploads whose original name carries one of Extensions.
type FileExtension struct {
	Base
	Extensions []string
}

func NewFileExtension(extensions ...string) *FileExtension {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		normalized = append(normalized, strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")))
	}
	return &FileExtension{Extensions: normalized}
}

func (v *FileExtension) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	d, ok := descriptor(value)
	if !ok {
		return v.Fail(UploadFileErrorInvalid, "Invalid type given. Upload expected", "validation.upload_invalid", nil)
	}
	if !slices.Contains(v.Extensions, d.Extension()) {
		return v.Fail(FileExtensionFalse, "File has an incorrect extension", "validation.file_extension",
			map[string]any{"extensions": v.Extensions})
	}
	return true
}

// FileMediaType accepts uploads whose media type matches one of Types.
// A type ending in "/*" matches the whole family.
type FileMediaType struct {
	Base
	Types []string
}

func NewFileMediaType(types ...string) *FileMediaType {
	return &FileMediaType{Types: types}
}

func (v *FileMediaType) IsValid(value any, _ map[string]any) bool {
	v.Reset()
	d, ok := descriptor(value)
	if !ok {
		return v.Fail(UploadFileErrorInvalid, "Invalid type given. Upload expected", "validation.upload_invalid", nil)
	}
	mt := strings.ToLower(d.MediaType)
	for _, t := range v.Types {
		t = strings.ToLower(strings.TrimSpace(t))
		if family, ok := strings.CutSuffix(t, "/*"); ok {
			if strings.HasPrefix(mt, family+"/") {
				return true
			}
			continue
		}
		if mt == t {
			return true
		}
	}
	return v.Fail(FileMediaTypeFalse,
		fmt.Sprintf("File has an incorrect mimetype of '%s'", d.MediaType),
		"validation.file_media_type", map[string]any{"types": v.Types, "type": d.MediaType})
}
