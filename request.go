package panel

import (
	"context"

	"github.com/zoobzio/pipz"
)

const fetchName = "fetch"

// Request carries a document fetch through the pipeline. Raw is empty until
// the terminal stage has fetched from Source.
type Request struct {
	Source Source
	Raw    []byte
}

// fetchFrom returns a stage that fetches from src, ignoring the request's
// own source. A nil src fetches from the request's source.
func fetchFrom(src Source) pipz.Chainable[*Request] {
	return pipz.Apply(fetchName, func(ctx context.Context, req *Request) (*Request, error) {
		from := src
		if from == nil {
			from = req.Source
		}
		raw, err := from.Fetch(ctx)
		if err != nil {
			return req, err
		}
		return &Request{Source: from, Raw: raw}, nil
	})
}
