package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCeiling = 100 << 20

func TestValidateUploadAccepts(t *testing.T) {
	allowed := []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"text/plain",
		"image/jpeg",
		"image/png",
		"image/gif",
	}
	for _, ct := range allowed {
		assert.Nil(t, ValidateUpload(ct, 600, testCeiling), "type %q should be accepted", ct)
	}

	// size exactly at the ceiling is still accepted
	assert.Nil(t, ValidateUpload("application/pdf", testCeiling, testCeiling))
}

func TestValidateUploadRejectsType(t *testing.T) {
	for _, ct := range []string{"application/zip", "text/html", "video/mp4", "application/octet-stream", ""} {
		verr := ValidateUpload(ct, 600, testCeiling)
		require.NotNil(t, verr, "type %q should be rejected", ct)
		assert.Equal(t, ReasonUnsupportedType, verr.Reason)
		assert.NotEmpty(t, verr.Error())
	}
}

func TestValidateUploadRejectsSize(t *testing.T) {
	verr := ValidateUpload("application/pdf", testCeiling+1, testCeiling)
	require.NotNil(t, verr)
	assert.Equal(t, ReasonTooLarge, verr.Reason)
}

func TestValidateUploadTypeCheckedFirst(t *testing.T) {
	// a file failing both rules reports the type reason
	verr := ValidateUpload("application/zip", testCeiling+1, testCeiling)
	require.NotNil(t, verr)
	assert.Equal(t, ReasonUnsupportedType, verr.Reason)
}
