package mediator

import (
	"context"
)

// Request is a command (mutates upstream state) or a query (builds a view model).
// Requests are dispatched by their dynamic type, so always send pointers.
type Request interface{}

// Response is whatever the request's handler produces
type Response interface{}

// RequestHandler handles a specific request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc is the next step in a middleware chain. It also adapts a plain
// function to RequestHandler.
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

func (f HandlerFunc) Handle(ctx context.Context, request Request) (Response, error) {
	return f(ctx, request)
}

// Middleware wraps every dispatch, e.g. for logging or metrics
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)
