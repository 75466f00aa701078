package argtok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// resolveCase exercises one coercion against one raw token.
type resolveCase[T any] struct {
	raw      string
	err      error
	expected T
}

func noErrorCase[T any](expected T, raw string) resolveCase[T] {
	return resolveCase[T]{raw: raw, expected: expected}
}

func errorCase[T any](err error, raw string) resolveCase[T] {
	return resolveCase[T]{raw: raw, err: err}
}

func (me resolveCase[T]) Run(t *testing.T, resolve func(Token) (T, error)) {
	actual, err := resolve(Classify(me.raw))
	assert.EqualValues(t, me.err, err, "%q", me.raw)
	if me.err != nil {
		return
	}
	assert.EqualValues(t, me.expected, actual, "%v", me)
}

func runResolveCases[T any](t *testing.T, cases []resolveCase[T], resolve func(Token) (T, error)) {
	for _, _case := range cases {
		_case.Run(t, resolve)
	}
}
