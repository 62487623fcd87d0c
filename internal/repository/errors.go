package repository

import (
	"twijournal/internal/pkg/database"

	"github.com/pkg/errors"
)

// 仓储层错误，存储驱动的原始错误不会越过这一层
var (
	ErrUsernameTaken     = errors.New("username already taken")
	ErrFollowEdgeExists  = errors.New("follow edge already exists")
	ErrFollowEdgeMissing = errors.New("follow edge does not exist")
	ErrDailyQuotaReached = errors.New("daily post quota reached")
)

// translateError 唯一约束冲突翻译为 onDuplicate，其余错误附带上下文返回
func translateError(err error, onDuplicate error, msg string) error {
	if err == nil {
		return nil
	}
	if onDuplicate != nil && database.IsDuplicateKey(err) {
		return onDuplicate
	}
	return errors.Wrap(err, msg)
}
