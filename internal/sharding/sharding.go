package sharding

import "github.com/cespare/xxhash/v2"

type ShardRouter struct {
	ShardCount int // Number of shards
}

func NewShardRouter(shardCount int) *ShardRouter {
	if shardCount < 1 {
		shardCount = 1
	}
	return &ShardRouter{ShardCount: shardCount}
}

// GetShard maps a user id to a shard index. All orders of one user land on the
// same shard so an order and its details always share a transaction.
func (r *ShardRouter) GetShard(userID string) int {
	return int(xxhash.Sum64String(userID) % uint64(r.ShardCount))
}
