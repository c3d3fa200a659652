package shiritori

// ShiritoriError is a custom error type for shiritori-related errors
type ShiritoriError string

// Error implements the error interface
func (e ShiritoriError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameInProgress ShiritoriError = "a shiritori game is already running"
	ErrNoActiveGame   ShiritoriError = "no shiritori game is running"
	ErrNotYourTurn    ShiritoriError = "it is not your turn"
	ErrInvalidWord    ShiritoriError = "that word cannot be used"
	ErrChainBroken    ShiritoriError = "the word does not continue the chain"
	ErrNilConfig      ShiritoriError = "config cannot be nil"
	ErrNilStatsRepo   ShiritoriError = "member stats repository cannot be nil"
	ErrNilPicker      ShiritoriError = "picker cannot be nil"
	ErrNilClock       ShiritoriError = "clock cannot be nil"
)
