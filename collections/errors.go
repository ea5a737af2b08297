package collections

import "errors"

// Sentinel errors returned by Collection operations. Match them with
// errors.Is; most are wrapped with extra context.
var (
	// ErrItemNotFound is returned by FirstOrFail and Sole when no item
	// satisfies the condition.
	ErrItemNotFound = errors.New("collections: item not found")

	// ErrMultipleItemsFound is returned by Sole when more than one item
	// satisfies the condition.
	ErrMultipleItemsFound = errors.New("collections: multiple items found")

	// ErrInvalidReducerOutput is returned by ReduceSpread when the reducer
	// does not return a []any accumulator.
	ErrInvalidReducerOutput = errors.New("collections: reducer must return a []any accumulator")

	// ErrKeyNotFound is returned by OffsetGet for an absent key.
	ErrKeyNotFound = errors.New("collections: key not found")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collections: macro not found")

	// ErrMethodNotFound is returned by Invoke and deferred operations for a
	// name that is neither a built-in operation nor a registered macro.
	ErrMethodNotFound = errors.New("collections: method not found")

	// ErrInvalidArgument is returned by Invoke when an argument has the
	// wrong shape for the named operation.
	ErrInvalidArgument = errors.New("collections: invalid argument")
)

// ErrMismatchedLengths is returned by Combine when the keys and the values
// hold a different number of items.
var ErrMismatchedLengths = errors.New("collections: keys and values must have the same length")
