// Package query evaluates JSONPath expressions against analysis reports.
package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/fibprime/internal/domain"
)

// Report selects part of rep with a JSONPath expression such as "$.primes" or
// "$.sequence[-1:]". Numbers keep full int64 precision.
func Report(rep domain.Report, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, domain.InvalidArgument("query.report", "empty jsonpath expression")
	}

	doc, err := toDocument(rep)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.report",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.report",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("jsonpath %q: %v: %w", expr, err, domain.ErrInvalidArgument),
		}
	}
	return val, nil
}

func toDocument(rep domain.Report) (any, error) {
	b, err := json.Marshal(rep)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
