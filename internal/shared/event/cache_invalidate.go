package event

const CacheInvalidateDestination string = "cache_invalidation"

type CacheInvalidateMessage struct {
	Key string `json:"key"`
}
