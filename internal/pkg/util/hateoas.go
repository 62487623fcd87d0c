package util

import (
	"fmt"
	"strconv"
	"twijournal/internal/api/dto"
	"twijournal/internal/pkg/consts"
)

// PostLink 指向帖子详情
func PostLink(detailURI string, postID int64) dto.HateoasDTO {
	return dto.HateoasDTO{Rel: consts.RelPost, Href: PtrString(detailURI + strconv.FormatInt(postID, 10))}
}

// ReferencePostLink 指向被引用的帖子
func ReferencePostLink(detailURI string, postID int64) dto.HateoasDTO {
	return dto.HateoasDTO{Rel: consts.RelReferencePost, Href: PtrString(detailURI + strconv.FormatInt(postID, 10))}
}

// PageLinks 固定返回 [previous_page, next_page]，不存在的一侧 href 为 nil
// resourceURI 不带查询串，query 为追加在 page 之后的参数（如 "&only_following=true"）
func PageLinks(resourceURI string, page, totalPages int, query string) []dto.HateoasDTO {
	previous := dto.HateoasDTO{Rel: consts.RelPreviousPage}
	next := dto.HateoasDTO{Rel: consts.RelNextPage}

	if page > 1 && page <= totalPages {
		previous.Href = PtrString(pageHref(resourceURI, page-1, query))
	}
	if page >= 1 && page < totalPages {
		next.Href = PtrString(pageHref(resourceURI, page+1, query))
	}

	return []dto.HateoasDTO{previous, next}
}

func pageHref(resourceURI string, page int, query string) string {
	return fmt.Sprintf("%s?page=%d%s", resourceURI, page, query)
}
