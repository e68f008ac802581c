package service

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound marks a referenced subcategory, question or attempt as absent.
// Zero results from a valid reference are never an error.
var ErrNotFound = errors.New("not found")

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

// asNotFound translates the driver's no-documents sentinel; any other storage
// error propagates to the caller untouched.
func asNotFound(err error, kind, id string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFound(kind, id)
	}
	return err
}
