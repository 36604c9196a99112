package game

const (
	// MaxOpenPerCall bounds how many cases one request may open
	MaxOpenPerCall = 100

	// StartingCases is the case count a freshly registered player begins with
	StartingCases = 10
)
