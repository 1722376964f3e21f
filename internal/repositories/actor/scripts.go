package actor

import (
	"github.com/redis/go-redis/v9"
)

// Script replies are {status, a, b}. status 1 is success, 0 is a refusal and
// -1 means the pool hash does not exist.
const (
	scriptOK        = 1
	scriptRefused   = 0
	scriptNoSuchKey = -1
)

// KEYS[1] mana hash, ARGV[1] amount. Reply {status, current, casting_max}.
var debitManaScript = redis.NewScript(`
local raw = redis.call('HGET', KEYS[1], 'current')
if not raw then
  return {-1, 0, 0}
end
local current = tonumber(raw)
local castingMax = tonumber(redis.call('HGET', KEYS[1], 'casting_max') or '0')
local amount = tonumber(ARGV[1])
if current < amount then
  return {0, current, castingMax}
end
local remaining = redis.call('HINCRBY', KEYS[1], 'current', -amount)
return {1, remaining, castingMax}
`)

// KEYS[1] luck hash, ARGV[1] delta. Reply {status, current, max}; status 0
// means the clamped value equals the old one and nothing was written.
var adjustLuckScript = redis.NewScript(`
local raw = redis.call('HGET', KEYS[1], 'current')
if not raw then
  return {-1, 0, 0}
end
local current = tonumber(raw)
local maxLuck = tonumber(redis.call('HGET', KEYS[1], 'max') or '0')
local nextValue = current + tonumber(ARGV[1])
if nextValue > maxLuck then
  nextValue = maxLuck
end
if nextValue < 0 then
  nextValue = 0
end
if nextValue == current then
  return {0, current, maxLuck}
end
redis.call('HSET', KEYS[1], 'current', nextValue)
return {1, nextValue, maxLuck}
`)
