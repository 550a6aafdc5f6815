package redisx

import "time"

const (
	// Session cart: cart:{session_id} -> JSON array of cart lines
	KeyCart = "cart:%s"

	// Pub/sub channel per catalog collection: store.changed:{collection}
	ChannelStoreChanged = "store.changed:%s"
)

// TTLCart bounds how long an abandoned cart survives.
var TTLCart = 30 * 24 * time.Hour
