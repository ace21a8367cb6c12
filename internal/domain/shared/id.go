package shared

import (
	"fmt"

	nanoid "github.com/jaevor/go-nanoid"
)

const (
	// DefaultIDLength is the nanoid length used for entity identifiers
	DefaultIDLength = 21
	// OrderIDLength is the length of the random part of an order id
	OrderIDLength = 8
	// OrderIDPrefix prefixes every order id shown to shoppers
	OrderIDPrefix = "ORD-"
)

// IDGenerator produces a new identifier on every call
type IDGenerator func() string

// NewIDGenerator returns a nanoid generator producing ids of the given length
func NewIDGenerator(length int) (IDGenerator, error) {
	gen, err := nanoid.Standard(length)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}
	return IDGenerator(gen), nil
}

// MustIDGenerator is like NewIDGenerator but panics on an invalid length
func MustIDGenerator(length int) IDGenerator {
	gen, err := NewIDGenerator(length)
	if err != nil {
		panic(err)
	}
	return gen
}

var (
	entityIDs = MustIDGenerator(DefaultIDLength)
	orderIDs  = MustIDGenerator(OrderIDLength)
)

// NewID returns a new entity identifier
func NewID() string {
	return entityIDs()
}

// NewOrderID returns a new order identifier such as ORD-V1StGXR8
func NewOrderID() string {
	return OrderIDPrefix + orderIDs()
}
