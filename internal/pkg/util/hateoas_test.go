package util

import (
	"math"
	"testing"
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hrefOf(t *testing.T, links []dto.HateoasDTO, rel string) *string {
	t.Helper()
	for _, l := range links {
		if l.Rel == rel {
			return l.Href
		}
	}
	t.Fatalf("rel %q missing", rel)
	return nil
}

func TestPageLinksFirstPage(t *testing.T) {
	links := PageLinks("http://localhost:8000/api/feeds", 1, 2, "&only_following=true")
	require.Len(t, links, 2)
	assert.Equal(t, consts.RelPreviousPage, links[0].Rel)
	assert.Equal(t, consts.RelNextPage, links[1].Rel)

	assert.Nil(t, hrefOf(t, links, consts.RelPreviousPage))
	next := hrefOf(t, links, consts.RelNextPage)
	require.NotNil(t, next)
	assert.Equal(t, "http://localhost:8000/api/feeds?page=2&only_following=true", *next)
}

func TestPageLinksLastPage(t *testing.T) {
	links := PageLinks("http://localhost:8000/api/posts/alice", 2, 2, "")
	previous := hrefOf(t, links, consts.RelPreviousPage)
	require.NotNil(t, previous)
	assert.Equal(t, "http://localhost:8000/api/posts/alice?page=1", *previous)
	assert.Nil(t, hrefOf(t, links, consts.RelNextPage))
}

func TestPageLinksSinglePage(t *testing.T) {
	links := PageLinks("http://x/feeds", 1, 1, "")
	assert.Nil(t, links[0].Href)
	assert.Nil(t, links[1].Href)
}

func TestPostLinks(t *testing.T) {
	link := PostLink("http://localhost:8000/api/posts/detail/", 42)
	assert.Equal(t, consts.RelPost, link.Rel)
	assert.Equal(t, "http://localhost:8000/api/posts/detail/42", *link.Href)

	ref := ReferencePostLink("http://localhost:8000/api/posts/detail/", 7)
	assert.Equal(t, consts.RelReferencePost, ref.Rel)
	assert.Equal(t, "http://localhost:8000/api/posts/detail/7", *ref.Href)
}

func TestTotalPagesAndOffset(t *testing.T) {
	assert.Equal(t, 2, TotalPages(15, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 3, TotalPages(3, 0))

	assert.Equal(t, 0, PageOffset(1, 10))
	assert.Equal(t, 10, PageOffset(2, 10))
	assert.Equal(t, 0, PageOffset(-3, 10))
	assert.Equal(t, 0, PageOffset(1844674407370955163, 5))
}

func TestPageInRange(t *testing.T) {
	assert.True(t, PageInRange(1, 5))
	assert.True(t, PageInRange(math.MaxInt/5+1, 5))
	assert.False(t, PageInRange(math.MaxInt/5+2, 5))
	assert.False(t, PageInRange(1844674407370955163, 5))
	assert.False(t, PageInRange(math.MaxInt, 10))
	assert.False(t, PageInRange(0, 5))
	assert.False(t, PageInRange(-1, 5))
	assert.True(t, PageInRange(math.MaxInt, 0))
}

func TestValidateDTO(t *testing.T) {
	assert.NoError(t, ValidateDTO(&dto.CreateUserDTO{Username: "alice01"}))

	err := ValidateDTO(&dto.CreateUserDTO{Username: "waytoolongusername"})
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateDTO(&dto.CreateUserDTO{Username: "bad name"})
	assert.ErrorIs(t, err, ErrValidation)

	err = ValidateDTO(&dto.CreatePostDTO{PostType: "story"})
	assert.ErrorIs(t, err, ErrValidation)
}
