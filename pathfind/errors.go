package pathfind

import (
	"errors"

	"github.com/katalvlaran/gridpath/adjacency"
	"github.com/katalvlaran/gridpath/bfs"
)

// Messages carried by InputError. They are part of the public contract.
const (
	MsgGridTooSmall     = "The first argument must be a two dimensional grid, at least 2x2 in size."
	MsgInconsistentRows = "There should be an equal number of columns in each row of the grid."
	MsgInvalidCellType  = "Each value in the grid must be of boolean type."
	MsgInvalidStart     = "Start vector must be a valid grid location."
	MsgInvalidEnd       = "End vector must be a valid grid location."
	MsgSameStartAndEnd  = "Start and end vectors must not be the same."
)

// InputError is the only error kind PathFind lets escape for bad input.
// Message is a fixed, human-readable sentence; the internal cause, when
// there is one, is reachable through errors.Unwrap.
type InputError struct {
	Message string
	cause   error
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return e.Message
}

// Unwrap returns the internal adjacency or bfs sentinel behind e, if any.
func (e *InputError) Unwrap() error {
	return e.cause
}

func inputError(msg string, cause error) *InputError {
	return &InputError{Message: msg, cause: cause}
}

// translate maps internal failures onto InputError.
// Anything it does not recognise, e.g. a cancelled context, is returned as is.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adjacency.ErrGridTooSmall):
		return inputError(MsgGridTooSmall, err)
	case errors.Is(err, adjacency.ErrInconsistentRowWidth):
		return inputError(MsgInconsistentRows, err)
	case errors.Is(err, adjacency.ErrInvalidCellType):
		return inputError(MsgInvalidCellType, err)
	case errors.Is(err, bfs.ErrSameSourceAndDestination):
		return inputError(MsgSameStartAndEnd, err)
	case errors.Is(err, bfs.ErrSourceOutOfBounds):
		return inputError(MsgInvalidStart, err)
	case errors.Is(err, bfs.ErrDestinationOutOfBounds):
		return inputError(MsgInvalidEnd, err)
	default:
		return err
	}
}
