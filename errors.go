package main

import "fmt"

// WrapOperationError prefixes err with "failed to <operation>"; nil stays nil.
func WrapOperationError(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}
