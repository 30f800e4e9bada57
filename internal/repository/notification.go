package repository

import (
	"context"
	"fmt"

	"gitee.com/flycash/notification-scheduler/internal/domain"
	"gitee.com/flycash/notification-scheduler/internal/errs"
	ca "github.com/patrickmn/go-cache"
)

// NotificationRepository 通知登记表，按ID持有全部通知，进程存活期间不清理。
// 投递队列和缓冲区只持有这里的引用。
type NotificationRepository interface {
	// Save 登记或覆盖一条通知
	Save(ctx context.Context, n *domain.Notification) error
	// GetByID 找不到返回 errs.ErrNotificationNotFound
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	// Count 登记过的通知数量
	Count(ctx context.Context) int
}

type notificationRepository struct {
	c *ca.Cache
}

// NewNotificationRepository c 需要是永不过期的缓存
func NewNotificationRepository(c *ca.Cache) NotificationRepository {
	return &notificationRepository{c: c}
}

func (r *notificationRepository) Save(_ context.Context, n *domain.Notification) error {
	if n == nil || n.ID == "" {
		return fmt.Errorf("%w: 通知ID不能为空", errs.ErrInvalidParameter)
	}
	r.c.Set(notificationKey(n.ID), n, ca.NoExpiration)
	return nil
}

func (r *notificationRepository) GetByID(_ context.Context, id string) (*domain.Notification, error) {
	v, ok := r.c.Get(notificationKey(id))
	if !ok {
		return nil, fmt.Errorf("%w: ID = %q", errs.ErrNotificationNotFound, id)
	}
	n, ok := v.(*domain.Notification)
	if !ok {
		return nil, fmt.Errorf("%w: ID = %q", errs.ErrNotificationNotFound, id)
	}
	return n, nil
}

func (r *notificationRepository) Count(_ context.Context) int {
	return r.c.ItemCount()
}

func notificationKey(id string) string {
	return "notification:" + id
}
