package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avezina/inkwell/domain"
)

const testVisitor = "2b1f9c5e-8f07-4f0a-9b63-0a4f9a1d8e11"

func TestLikedTargetsMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewLikeCache(db)

	key := fmt.Sprintf(KeyVisitorLiked, domain.LikeTargetPost, testVisitor)
	mock.ExpectExists(key).SetVal(0)

	_, err := cache.LikedTargets(context.Background(), testVisitor, domain.LikeTargetPost)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLikedTargetsSkipsPlaceholder(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewLikeCache(db)

	key := fmt.Sprintf(KeyVisitorLiked, domain.LikeTargetPost, testVisitor)
	mock.ExpectExists(key).SetVal(1)
	mock.ExpectSMembers(key).SetVal([]string{likedSetPlaceholder, "3", "17"})

	ids, err := cache.LikedTargets(context.Background(), testVisitor, domain.LikeTargetPost)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{3, 17}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSetLikedTargetsWritesPlaceholder(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewLikeCache(db)

	key := fmt.Sprintf(KeyVisitorLiked, domain.LikeTargetCategory, testVisitor)
	mock.ExpectSAdd(key, likedSetPlaceholder, "5").SetVal(2)
	mock.ExpectExpire(key, likedSetTTL).SetVal(true)

	err := cache.SetLikedTargets(context.Background(), testVisitor, domain.LikeTargetCategory, []int64{5})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLikeCount(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewLikeCache(db)

	key := fmt.Sprintf(KeyLikeCount, domain.LikeTargetPost, int64(9))
	mock.ExpectGet(key).SetVal("12")

	likes, err := cache.GetLikeCount(context.Background(), domain.LikeTargetPost, 9)
	require.NoError(t, err)
	assert.EqualValues(t, 12, likes)
}

func TestGetLikeCountMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewLikeCache(db)

	key := fmt.Sprintf(KeyLikeCount, domain.LikeTargetPost, int64(9))
	mock.ExpectGet(key).RedisNil()

	_, err := cache.GetLikeCount(context.Background(), domain.LikeTargetPost, 9)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestGetLikeCountClampsNegative(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewLikeCache(db)

	// a DECR can race the counter below zero right before a recount lands
	key := fmt.Sprintf(KeyLikeCount, domain.LikeTargetPost, int64(9))
	mock.ExpectGet(key).SetVal("-2")

	likes, err := cache.GetLikeCount(context.Background(), domain.LikeTargetPost, 9)
	require.NoError(t, err)
	assert.Zero(t, likes)
}

func TestMGetLikeCounts(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewLikeCache(db)

	keys := []string{
		fmt.Sprintf(KeyLikeCount, domain.LikeTargetPost, int64(1)),
		fmt.Sprintf(KeyLikeCount, domain.LikeTargetPost, int64(2)),
		fmt.Sprintf(KeyLikeCount, domain.LikeTargetPost, int64(3)),
	}
	mock.ExpectMGet(keys...).SetVal([]interface{}{"4", nil, "0"})

	counts, err := cache.MGetLikeCounts(context.Background(), domain.LikeTargetPost, []int64{1, 2, 3})
	require.NoError(t, err)

	// missing keys are absent, present ones parsed
	assert.Equal(t, map[int64]int64{1: 4, 3: 0}, counts)
}

func TestMGetLikeCountsEmptyInput(t *testing.T) {
	db, _ := redismock.NewClientMock()
	cache := NewLikeCache(db)

	counts, err := cache.MGetLikeCounts(context.Background(), domain.LikeTargetPost, nil)
	require.NoError(t, err)
	assert.Nil(t, counts)
}

func TestSetLikeCount(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewLikeCache(db)

	key := fmt.Sprintf(KeyLikeCount, domain.LikeTargetCategory, int64(4))
	mock.ExpectSet(key, int64(7), time.Duration(0)).SetVal("OK")

	require.NoError(t, cache.SetLikeCount(context.Background(), domain.LikeTargetCategory, 4, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
