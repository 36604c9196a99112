package pool

// binarySearchThreshold is the pool size at which Sample switches from a
// linear scan to binary search over the cumulative weights. Both paths
// return identical results for identical inputs.
const binarySearchThreshold = 16
