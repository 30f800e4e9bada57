package errs

import (
	"errors"
)

// 定义统一的错误类型
var (
	ErrInvalidParameter             = errors.New("参数错误")
	ErrNotificationIDGenerateFailed = errors.New("通知ID生成失败")
	ErrNotificationNotFound         = errors.New("通知记录不存在")
	ErrIDGeneratorInit              = errors.New("ID生成器初始化失败")

	ErrFrequencyCache = errors.New("频率窗口读写失败")
)
