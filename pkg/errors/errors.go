package errors

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCounterType = errors.New("unknown counter type")
	ErrUnknownNamespace   = errors.New("unknown namespace")
	ErrStoreRead          = errors.New("counter store read failed")
	ErrSnapshotRead       = errors.New("snapshot read failed")
	ErrSnapshotWrite      = errors.New("snapshot write failed")
	ErrInvalidFilter      = errors.New("invalid filter expression")
	ErrConfigInvalid      = errors.New("invalid configuration")
)

func NewCounterTypeError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownCounterType, name)
}

func NewNamespaceError(ns string) error {
	return fmt.Errorf("%w: %s", ErrUnknownNamespace, ns)
}

func NewStoreReadError(table, key string, err error) error {
	return fmt.Errorf("%w: table=%s key=%s: %v", ErrStoreRead, table, key, err)
}

func NewSnapshotReadError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSnapshotRead, path, err)
}

func NewSnapshotWriteError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSnapshotWrite, path, err)
}

func NewFilterError(src string, err error) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidFilter, src, err)
}

func NewConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConfigInvalid, field, reason)
}
