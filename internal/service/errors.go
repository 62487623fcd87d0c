package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	UnprocessableEntity = 422
	InternalServerError = 500
)

var (
	ErrParamInvalid          = errors.New("参数错误")
	ErrCallerAbsent          = errors.New("缺少调用方身份")
	ErrUserNotFound          = errors.New("用户不存在")
	ErrUsernameAlreadyExists = errors.New("用户名已存在")
	ErrSelfFollowNotAllowed  = errors.New("用户不能关注自己")
	ErrAlreadyFollowing      = errors.New("用户已关注")
	ErrNotFollowing          = errors.New("用户未关注")
	ErrDailyQuotaExceeded    = errors.New("今日发帖数量已达上限")
	ErrInvalidPostShape      = errors.New("帖子类型与内容不匹配")
	ErrPostNotFound          = errors.New("帖子不存在")
	UnExpectedError          = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:          UnprocessableEntity,
	ErrCallerAbsent:          Unauthorized,
	ErrUserNotFound:          NotFound,
	ErrUsernameAlreadyExists: Conflict,
	ErrSelfFollowNotAllowed:  BadRequest,
	ErrAlreadyFollowing:      Conflict,
	ErrNotFollowing:          NotFound,
	ErrDailyQuotaExceeded:    Forbidden,
	ErrInvalidPostShape:      UnprocessableEntity,
	ErrPostNotFound:          NotFound,
	UnExpectedError:          InternalServerError,
}

// QuotaExceededError 携带配置的每日上限，errors.Is 可匹配 ErrDailyQuotaExceeded
type QuotaExceededError struct {
	Limit int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("Daily user quota of %d posts reached.", e.Limit)
}

func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrDailyQuotaExceeded
}

// ShapeError 携带具体的校验失败原因，errors.Is 可匹配 ErrInvalidPostShape
type ShapeError struct {
	Reason error
}

func (e *ShapeError) Error() string {
	return e.Reason.Error()
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidPostShape
}

// CodeOf 查找错误对应的业务码，未登记的错误返回 InternalServerError
func CodeOf(err error) (int, bool) {
	for target, code := range ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return InternalServerError, false
}
