package draw

const (
	// RarityPercentPerLevel converts a rarity_boost upgrade level into the
	// reshaping percentage (level 3 = 30%)
	RarityPercentPerLevel = 10.0

	// reshapedWeightFloor keeps every reshaped weight positive no matter how
	// extreme the boost percentage is
	reshapedWeightFloor = 1.0

	// reshapeCacheSize bounds the cache of reshaped pools. Keys are
	// (base pool, percentage) pairs; the handful of percentages a player can
	// actually have fits comfortably.
	reshapeCacheSize = 64
)
