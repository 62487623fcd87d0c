package service

import (
	"twijournal/internal/api/dto"
	"twijournal/internal/model"

	"github.com/jinzhu/copier"
)

func toUserDTO(user *model.User) *dto.UserDTO {
	if user == nil {
		return nil
	}
	userDTO := &dto.UserDTO{}
	_ = copier.Copy(userDTO, user)
	return userDTO
}

func toUserDTOs(users []*model.User) []*dto.UserDTO {
	items := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, toUserDTO(user))
	}
	return items
}

func toStatisticsDTO(statistics *model.UserStatistics) dto.UserStatisticsDTO {
	statisticsDTO := dto.UserStatisticsDTO{}
	if statistics != nil {
		_ = copier.Copy(&statisticsDTO, statistics)
	}
	return statisticsDTO
}

// toPostDTO 只展开一层 reference_post
func toPostDTO(post *model.Post) *dto.PostDTO {
	if post == nil {
		return nil
	}
	postDTO := &dto.PostDTO{
		ID:              post.ID,
		ReferencePostID: post.ReferencePostID,
		PostType:        string(post.PostType),
		Text:            post.Text,
		PublishedBy:     post.PublishedBy,
		PublishedAt:     post.PublishedAt,
		Publisher:       toUserDTO(post.Author),
	}
	if post.ReferencePost != nil {
		ref := post.ReferencePost
		postDTO.ReferencePost = &dto.PostDTO{
			ID:              ref.ID,
			ReferencePostID: ref.ReferencePostID,
			PostType:        string(ref.PostType),
			Text:            ref.Text,
			PublishedBy:     ref.PublishedBy,
			PublishedAt:     ref.PublishedAt,
			Publisher:       toUserDTO(ref.Author),
		}
	}
	return postDTO
}
