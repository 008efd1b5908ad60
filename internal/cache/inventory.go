package cache

import "time"

// The home listing is the only cached page. It lives under one fixed key
// with a short TTL and is never invalidated on write; staleness inside the
// TTL window is an accepted tradeoff.
const (
	IndexKey = "index:page1"
	IndexTTL = 20 * time.Second
)
