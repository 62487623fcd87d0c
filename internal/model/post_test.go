package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func int64Ptr(i int64) *int64 { return &i }

func TestValidatePostShape(t *testing.T) {
	cases := []struct {
		name     string
		postType PostType
		text     *string
		ref      *int64
		ok       bool
	}{
		{"original with text", PostTypeOriginal, strPtr("hello"), nil, true},
		{"original without text", PostTypeOriginal, nil, nil, false},
		{"original blank text", PostTypeOriginal, strPtr("   "), nil, false},
		{"original with reference", PostTypeOriginal, strPtr("hello"), int64Ptr(1), false},
		{"reposting with reference", PostTypeReposting, nil, int64Ptr(1), true},
		{"reposting with text", PostTypeReposting, strPtr("hello"), int64Ptr(1), false},
		{"reposting with empty text", PostTypeReposting, strPtr(""), int64Ptr(1), false},
		{"reposting without reference", PostTypeReposting, nil, nil, false},
		{"quote with text and reference", PostTypeQuote, strPtr("look"), int64Ptr(1), true},
		{"quote without text", PostTypeQuote, nil, int64Ptr(1), false},
		{"quote without reference", PostTypeQuote, strPtr("look"), nil, false},
		{"unknown type", PostType("story"), strPtr("x"), nil, false},
		{"text too long", PostTypeOriginal, strPtr(strings.Repeat("a", PostTextMaxLength+1)), nil, false},
		{"text at limit", PostTypeOriginal, strPtr(strings.Repeat("ü", PostTextMaxLength)), nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePostShape(tc.postType, tc.text, tc.ref)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPostShape)
			}
		})
	}
}

func TestPostBeforeCreateRejectsBadShape(t *testing.T) {
	p := &Post{PostType: PostTypeReposting, Text: strPtr("no"), ReferencePostID: int64Ptr(3)}
	assert.ErrorIs(t, p.BeforeCreate(nil), ErrInvalidPostShape)
}
