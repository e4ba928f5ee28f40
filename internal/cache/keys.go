package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	DogKeyPrefix  = "dog:owner:%d"
	FeedKey       = "posts:feed"
)

const (
	UserTTL = 5 * time.Minute
	DogTTL  = 5 * time.Minute
	FeedTTL = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func DogKey(ownerID uint) string {
	return fmt.Sprintf(DogKeyPrefix, ownerID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateDog(ctx context.Context, ownerID uint) {
	Invalidate(ctx, DogKey(ownerID))
}

func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedKey)
}
