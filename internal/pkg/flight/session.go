package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ijalalfrz/flight-selection-service/internal/app/dto"
	"github.com/redis/go-redis/v9"
)

// applyStateScript stores a search result only while its epoch is the latest
// issued one. KEYS: epoch, state, applied. ARGV: epoch, state, ttl in ms.
const applyStateScript = `
local current = redis.call("GET", KEYS[1])
if not current or tonumber(current) ~= tonumber(ARGV[1]) then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
redis.call("SET", KEYS[3], ARGV[1], "PX", ARGV[3])
return 1
`

// replaceStateScript stores a filter or selection change only while the
// stored search result still has its epoch. KEYS: applied, state.
// ARGV: epoch, state, ttl in ms. Returns -1 when the session expired.
const replaceStateScript = `
local applied = redis.call("GET", KEYS[1])
if not applied then
	return -1
end
if tonumber(applied) ~= tonumber(ARGV[1]) then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
redis.call("PEXPIRE", KEYS[1], ARGV[3])
return 1
`

type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// SessionStore keeps the state of each rendering layer session in redis.
// Every search takes a new epoch from a per-session counter and its result is
// only written while that epoch is still the latest one, so a slow response
// can never overwrite the result of a newer search. Filter and selection
// changes are written against the search result they were derived from.
// Both checks run inside a script together with the write.
type SessionStore struct {
	redis RedisClient
}

func NewSessionStore(redis RedisClient) *SessionStore {
	return &SessionStore{
		redis: redis,
	}
}

func (s *SessionStore) GetEpochKey(sessionID string) string {
	return fmt.Sprintf("flight:session:%s:epoch", sessionID)
}

// GetAppliedKey holds the epoch of the stored search result.
func (s *SessionStore) GetAppliedKey(sessionID string) string {
	return fmt.Sprintf("flight:session:%s:applied", sessionID)
}

func (s *SessionStore) GetStateKey(sessionID string) string {
	return fmt.Sprintf("flight:session:%s:state", sessionID)
}

// NextEpoch issues the epoch of a new search request.
func (s *SessionStore) NextEpoch(ctx context.Context, sessionID string, ttl time.Duration) (int64, error) {
	key := s.GetEpochKey(sessionID)

	epoch, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment epoch: %w", err)
	}

	if err := s.redis.Expire(ctx, key, ttl).Err(); err != nil {
		return 0, fmt.Errorf("failed to set epoch expiration: %w", err)
	}

	return epoch, nil
}

// GetState returns the stored state of a session or ErrSessionNotFound.
func (s *SessionStore) GetState(ctx context.Context, sessionID string) (dto.SessionState, error) {
	data, err := s.redis.Get(ctx, s.GetStateKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return dto.SessionState{}, ErrSessionNotFound
	}

	if err != nil {
		return dto.SessionState{}, fmt.Errorf("failed to get session state: %w", err)
	}

	var state dto.SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return dto.SessionState{}, fmt.Errorf("failed to unmarshal session state: %w", err)
	}

	return state, nil
}

// ApplyState stores the result of a search if state.Epoch is still the latest
// issued epoch of the session. It returns false, without writing, for a
// superseded search.
func (s *SessionStore) ApplyState(ctx context.Context,
	sessionID string,
	state dto.SessionState,
	ttl time.Duration,
) (bool, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return false, fmt.Errorf("failed to marshal session state: %w", err)
	}

	applied, err := s.redis.Eval(ctx, applyStateScript,
		[]string{s.GetEpochKey(sessionID), s.GetStateKey(sessionID), s.GetAppliedKey(sessionID)},
		state.Epoch, data, ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to apply session state: %w", err)
	}

	return applied == 1, nil
}

// ReplaceState stores a filter or selection change if the stored search result
// still has state.Epoch. It returns false, without writing, when another
// search result was stored since state was read.
func (s *SessionStore) ReplaceState(ctx context.Context,
	sessionID string,
	state dto.SessionState,
	ttl time.Duration,
) (bool, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return false, fmt.Errorf("failed to marshal session state: %w", err)
	}

	replaced, err := s.redis.Eval(ctx, replaceStateScript,
		[]string{s.GetAppliedKey(sessionID), s.GetStateKey(sessionID)},
		state.Epoch, data, ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to replace session state: %w", err)
	}

	if replaced < 0 {
		return false, ErrSessionNotFound
	}

	return replaced == 1, nil
}
