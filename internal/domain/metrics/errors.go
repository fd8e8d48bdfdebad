package metrics

import "errors"

// ErrAggregationFailure indicates the collections could not be read.
var ErrAggregationFailure = errors.New("metrics aggregation failed")
