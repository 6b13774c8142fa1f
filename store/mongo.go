package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// server error codes raised when a sort cannot use an index
const (
	codeNoQueryExecutionPlans             = 291
	codeQueryExceededMemoryLimitNoDiskUse = 292
)

// translateMongoError maps driver errors onto the store's error values.
func translateMongoError(err error) error {
	if err == nil {
		return nil
	}

	var se mongo.ServerError
	if errors.As(err, &se) {
		if se.HasErrorCode(codeNoQueryExecutionPlans) || se.HasErrorCode(codeQueryExceededMemoryLimitNoDiskUse) {
			return fmt.Errorf("%w: %s", ErrIndexMissing, err.Error())
		}
	}

	return err
}
