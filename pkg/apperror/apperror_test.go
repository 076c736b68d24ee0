package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindMatching(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "validation matches sentinel",
			err:    Validation("initial investment must be positive"),
			target: ErrValidation,
			want:   true,
		},
		{
			name:   "wrapped not found matches sentinel",
			err:    fmt.Errorf("load bars: %w", NotFound("no historical data found for %s", "IBM")),
			target: ErrNotFound,
			want:   true,
		},
		{
			name:   "empty series does not match validation",
			err:    EmptySeries("price series is empty"),
			target: ErrValidation,
			want:   false,
		},
		{
			name:   "plain error matches nothing",
			err:    errors.New("boom"),
			target: ErrComputation,
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	cause := errors.New("pq: relation \"stock_prices\" does not exist")

	assert.Equal(t, "symbol is required", PublicMessage(Validation("symbol is required"), "internal error"))
	assert.Equal(t, "internal error", PublicMessage(Computation(cause, "division by zero price"), "internal error"))
	assert.Equal(t, "internal error", PublicMessage(cause, "internal error"))
	assert.Equal(t, KindComputation, KindOf(fmt.Errorf("run: %w", Computation(cause, "x"))))
	assert.ErrorIs(t, Computation(cause, "x"), cause)
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: Validation("bad"), want: http.StatusBadRequest},
		{name: "empty series", err: EmptySeries("empty"), want: http.StatusNotFound},
		{name: "not found", err: fmt.Errorf("wrap: %w", NotFound("missing")), want: http.StatusNotFound},
		{name: "upstream", err: Upstream(errors.New("timeout"), "provider failed"), want: http.StatusBadGateway},
		{name: "computation", err: Computation(errors.New("x"), "y"), want: http.StatusInternalServerError},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
	assert.Equal(t, "provider failed", PublicMessage(Upstream(errors.New("timeout"), "provider failed"), "internal error"))
}
