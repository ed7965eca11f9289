package planner

import "errors"

var (
	ErrPlannerNotFound = errors.New("planner not found")
	ErrItemNotFound    = errors.New("spending item not found")
	ErrAmbiguous       = errors.New("reference matches more than one entry")
	ErrNotSaved        = errors.New("the current board is not a saved planner")
)
