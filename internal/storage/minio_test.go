package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	s := &MinioStorage{publicBase: "http://localhost:9000"}
	assert.Equal(t, "http://localhost:9000/test-docs/abc-report.pdf", s.PublicURL("test-docs", "abc-report.pdf"))
}

func TestUserMetaValue(t *testing.T) {
	// listings return prefixed keys, stat returns stripped ones
	prefixed := map[string]string{"X-Amz-Meta-Original-Name": "report.pdf"}
	stripped := map[string]string{"Original-Name": "report.pdf"}

	assert.Equal(t, "report.pdf", userMetaValue(prefixed, metaOriginalName))
	assert.Equal(t, "report.pdf", userMetaValue(stripped, metaOriginalName))
	assert.Empty(t, userMetaValue(nil, metaOriginalName))
	assert.Empty(t, userMetaValue(map[string]string{}, metaOriginalName))
}

func TestPublicReadPolicy(t *testing.T) {
	var policy struct {
		Version   string `json:"Version"`
		Statement []struct {
			Effect   string `json:"Effect"`
			Action   string `json:"Action"`
			Resource string `json:"Resource"`
		} `json:"Statement"`
	}
	require.NoError(t, json.Unmarshal([]byte(publicReadPolicy("test-docs")), &policy))
	require.Len(t, policy.Statement, 1)
	assert.Equal(t, "Allow", policy.Statement[0].Effect)
	assert.Equal(t, "s3:GetObject", policy.Statement[0].Action)
	assert.Equal(t, "arn:aws:s3:::test-docs/*", policy.Statement[0].Resource)
}
