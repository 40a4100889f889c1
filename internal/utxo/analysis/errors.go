package analysis

import "fmt"

// EmptyInputError is returned when a stage requires at least one row and got none.
type EmptyInputError struct {
	Table string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s table is empty", e.Table)
}
