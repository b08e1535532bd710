package postgres

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("postgres backend requires postgres.Config")

func NewParseConfigError(err error) error {
	return fmt.Errorf("failed to parse connection string: %w", err)
}

func NewPoolCreateError(err error) error {
	return fmt.Errorf("failed to create connection pool: %w", err)
}

func NewCreateTableError(err error) error {
	return fmt.Errorf("failed to create bucket table: %w", err)
}

func NewGetFailedError(key string, err error) error {
	return fmt.Errorf("failed to get key '%s': %w", key, err)
}

func NewSetFailedError(key string, err error) error {
	return fmt.Errorf("failed to set key '%s': %w", key, err)
}

func NewDeleteFailedError(key string, err error) error {
	return fmt.Errorf("failed to delete key '%s': %w", key, err)
}

func NewCheckAndSetFailedError(key string, err error) error {
	return fmt.Errorf("check-and-set failed for key '%s': %w", key, err)
}
