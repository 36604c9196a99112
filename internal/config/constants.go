package config

const (
	// Configuration file paths
	ConfigPathPools = "configs/pools.json"
)
