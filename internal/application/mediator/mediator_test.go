package mediator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
)

type pingQuery struct{ Name string }

type pingHandler struct{ calls int }

func (h *pingHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	h.calls++
	q := request.(*pingQuery)
	if q.Name == "" {
		return nil, errors.New("name required")
	}
	return "pong " + q.Name, nil
}

func TestMediator_SendDispatchesByType(t *testing.T) {
	// Arrange
	med := mediator.NewMediator()
	handler := &pingHandler{}
	require.NoError(t, mediator.RegisterHandler[*pingQuery](med, handler))

	// Act
	resp, err := med.Send(context.Background(), &pingQuery{Name: "DASH"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong DASH", resp)
	assert.Equal(t, 1, handler.calls)
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](med, &pingHandler{}))

	err := mediator.RegisterHandler[*pingQuery](med, &pingHandler{})

	assert.Error(t, err)
}

func TestMediator_UnregisteredAndNilRequests(t *testing.T) {
	med := mediator.NewMediator()

	_, err := med.Send(context.Background(), &pingQuery{})
	assert.ErrorContains(t, err, "no handler registered")

	_, err = med.Send(context.Background(), nil)
	assert.Error(t, err)
}

func TestMediator_MiddlewareOrder(t *testing.T) {
	// Arrange
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](med, &pingHandler{}))

	var trace []string
	tracing := func(name string) mediator.Middleware {
		return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
			trace = append(trace, name+" in")
			resp, err := next(ctx, request)
			trace = append(trace, name+" out")
			return resp, err
		}
	}
	med.RegisterMiddleware(tracing("outer"))
	med.RegisterMiddleware(tracing("inner"))

	// Act
	_, err := med.Send(context.Background(), &pingQuery{Name: "x"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"outer in", "inner in", "inner out", "outer out"}, trace)
}

func TestMediator_MiddlewareCanShortCircuit(t *testing.T) {
	med := mediator.NewMediator()
	handler := &pingHandler{}
	require.NoError(t, mediator.RegisterHandler[*pingQuery](med, handler))
	denied := errors.New("denied")
	med.RegisterMiddleware(func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		return nil, denied
	})

	_, err := med.Send(context.Background(), &pingQuery{Name: "x"})

	assert.ErrorIs(t, err, denied)
	assert.Zero(t, handler.calls)
}

func TestSend_TypedResponse(t *testing.T) {
	med := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[*pingQuery](med, &pingHandler{}))
	med.RegisterMiddleware(mediator.LoggingMiddleware())

	resp, err := mediator.Send[string](context.Background(), med, &pingQuery{Name: "typed"})
	require.NoError(t, err)
	assert.Equal(t, "pong typed", resp)

	_, err = mediator.Send[int](context.Background(), med, &pingQuery{Name: "typed"})
	assert.ErrorContains(t, err, "unexpected response type")

	_, err = mediator.Send[string](context.Background(), med, &pingQuery{})
	assert.ErrorContains(t, err, "name required")
}

type echoCommand struct{ Value int }

func TestHandlerFunc_AdaptsFunction(t *testing.T) {
	// Arrange
	med := mediator.NewMediator()
	double := mediator.HandlerFunc(func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return request.(*echoCommand).Value * 2, nil
	})
	require.NoError(t, mediator.RegisterHandler[*echoCommand](med, double))

	// Act
	got, err := mediator.Send[int](context.Background(), med, &echoCommand{Value: 21})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}
