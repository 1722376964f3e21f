package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every repository is written against.
// *redis.Client and the redismock client both satisfy it.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads against a missing key or field.
const Nil = redis.Nil
