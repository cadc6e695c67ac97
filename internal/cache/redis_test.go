package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedis_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisFromClient(db)
	ctx := context.Background()

	key := "llm:abc"

	t.Run("Hit", func(t *testing.T) {
		mock.ExpectGet(key).SetVal("cached summary")
		val, ok, err := c.Get(ctx, key)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "cached summary", val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, ok, err := c.Get(ctx, key)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectGet(key).SetErr(redisErr)
		_, ok, err := c.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedis_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisFromClient(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectSet("llm:abc", "value", time.Hour).SetVal("OK")
		assert.NoError(t, c.Set(ctx, "llm:abc", "value", time.Hour))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectSet("llm:abc", "value", time.Hour).SetErr(redisErr)
		assert.ErrorIs(t, c.Set(ctx, "llm:abc", "value", time.Hour), redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	var c Cache = Nop{}
	assert.NoError(t, c.Set(context.Background(), "k", "v", time.Minute))
	_, ok, err := c.Get(context.Background(), "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}
