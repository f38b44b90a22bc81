package container

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNameAccepts(t *testing.T) {
	valid := []string{
		"abc",
		"test-docs",
		"a1b2c3",
		"abc-123-xyz",
		"000",
		strings.Repeat("a", 63),
	}
	for _, name := range valid {
		assert.NoError(t, ValidateName(name), "name %q should be valid", name)
	}
}

func TestValidateNameRejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrNameRequired},
		{"too short", "ab", ErrNameLength},
		{"too long", strings.Repeat("a", 64), ErrNameLength},
		{"uppercase short", "AB", ErrNameLength},
		{"uppercase", "Abc", ErrNameCharset},
		{"underscore", "abc_def", ErrNameCharset},
		{"space", "abc def", ErrNameCharset},
		{"dot", "abc.def", ErrNameCharset},
		{"leading hyphen", "-abc", ErrNameEdgeHyphen},
		{"trailing hyphen", "abc-", ErrNameEdgeHyphen},
		{"double hyphen", "a--b", ErrNameDoubleHyphen},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateName(tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, IsInvalidName(err))
		})
	}
}

func TestValidateNameRuleOrder(t *testing.T) {
	// a name violating several rules reports the first failing one
	assert.ErrorIs(t, ValidateName("-A"), ErrNameLength)
	assert.ErrorIs(t, ValidateName("-A-"), ErrNameCharset)
	assert.ErrorIs(t, ValidateName("--a"), ErrNameEdgeHyphen)
}
