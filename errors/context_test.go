package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(CodeReadFailed, "read failed")
	err = WithContext(err, "path", "/sys/a")
	err = WithContext(err, "op", "readline")

	ctx := err.Context()
	require.Len(t, ctx, 2)
	require.Equal(t, "/sys/a", ctx["path"])
	require.Equal(t, "readline", ctx["op"])
}

func TestWithContext_StandardError(t *testing.T) {
	stdErr := stderrors.New("plain")
	err := WithContext(stdErr, "key", "value")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, stdErr, err.Unwrap())
	require.Equal(t, "value", err.Context()["key"])
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "key", "value"))
	require.Nil(t, WithContextMap(nil, map[string]any{"key": "value"}))
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestWithContext_Immutability(t *testing.T) {
	original := New(CodeInternal, "internal")
	modified := WithContext(original, "key", "value")

	require.Nil(t, original.Context())
	require.NotNil(t, modified.Context())

	leaked := modified.Context()
	leaked["key"] = "changed"
	require.Equal(t, "value", modified.Context()["key"])
}

func TestWithContextMap_Override(t *testing.T) {
	err := WithContext(New(CodeParseFailed, "parse"), "base", 10)
	err = WithContextMap(err, map[string]any{"base": 16, "path": "/sys/a"})

	ctx := err.Context()
	require.Equal(t, 16, ctx["base"])
	require.Equal(t, "/sys/a", ctx["path"])
}

func TestWithClassification(t *testing.T) {
	err := WithContext(New(CodeReadFailed, "read"), "path", "/sys/a")
	retry := WithClassification(err, ClassificationRetryable)

	require.True(t, retry.Classification().IsRetryable())
	require.False(t, err.Classification().IsRetryable())
	require.Equal(t, "/sys/a", retry.Context()["path"])
	require.Equal(t, CodeReadFailed, retry.Code())
}
