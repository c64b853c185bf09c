package fourier

import "fmt"

// InputSizeError reports that a value passed to a constructor did not satisfy a required
// size constraint.
type InputSizeError struct {
	Context string
	Want    string
	Got     int
}

func (e *InputSizeError) Error() string {
	return fmt.Sprintf("fourier: %s must be %s, is: %d", e.Context, e.Want, e.Got)
}
