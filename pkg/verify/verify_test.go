package verify_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mimiclib/mimic/pkg/invocation"
	"github.com/mimiclib/mimic/pkg/mimicerr"
	"github.com/mimiclib/mimic/pkg/verify"
)

type registry struct {
	Lookup func(name string) string
}

var (
	registryType = reflect.TypeOf(registry{})
	lookupMethod = invocation.Method{
		Owner: registryType,
		Name:  "Lookup",
		Type:  registryType.Field(0).Type,
	}
)

func lookupData(t *testing.T, mock any, wantedName string, logNames ...string) verify.Data {
	t.Helper()
	wanted, err := invocation.NewMatcher(invocation.New(mock, lookupMethod, []any{wantedName}), nil)
	require.NoError(t, err)

	log := make([]*invocation.Invocation, len(logNames))
	for i, name := range logNames {
		log[i] = invocation.New(mock, lookupMethod, []any{name})
	}
	return verify.Data{Wanted: wanted, All: log}
}

func TestTimesExactCountSucceeds(t *testing.T) {
	mock := &registry{}

	tests := []struct {
		name   string
		wanted int
		log    []string
	}{
		{"zero calls expected, none made", 0, nil},
		{"one call", 1, []string{"datasource"}},
		{"two of three match", 2, []string{"datasource", "userstore", "datasource"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := lookupData(t, mock, "datasource", tt.log...)
			assert.NoError(t, verify.Times{Wanted: tt.wanted}.Verify(data))
		})
	}
}

func TestTimesCountMismatchFails(t *testing.T) {
	mock := &registry{}
	data := lookupData(t, mock, "datasource", "datasource", "datasource")

	err := verify.Times{Wanted: 1}.Verify(data)
	require.Error(t, err)

	var verr *mimicerr.VerificationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 2, verr.Actual)
	assert.Equal(t, "1", verr.Expected)
	assert.Contains(t, err.Error(), "Actual: 2, expected: 1")
}

func TestTimesZeroFailsWhenCallHappened(t *testing.T) {
	mock := &registry{}
	data := lookupData(t, mock, "datasource", "datasource")

	err := verify.Times{Wanted: 0}.Verify(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Actual: 1, expected: 0")
}

func TestTimesFailureIncludesArgumentDiffForNearMiss(t *testing.T) {
	mock := &registry{}
	// the method was called, but with a different argument
	data := lookupData(t, mock, "datasource", "userstore")

	err := verify.Times{Wanted: 1}.Verify(data)
	require.Error(t, err)

	var verr *mimicerr.VerificationError
	require.True(t, errors.As(err, &verr))
	assert.NotEmpty(t, verr.Diff)
	assert.Contains(t, err.Error(), "argument(s) are different")
}

func TestTimesFailureWithoutNearMissHasNoDiff(t *testing.T) {
	mock := &registry{}
	data := lookupData(t, mock, "datasource")

	err := verify.Times{Wanted: 1}.Verify(data)
	require.Error(t, err)

	var verr *mimicerr.VerificationError
	require.True(t, errors.As(err, &verr))
	assert.Empty(t, verr.Diff)
}

func TestAtLeast(t *testing.T) {
	mock := &registry{}
	data := lookupData(t, mock, "datasource", "datasource", "datasource")

	assert.NoError(t, verify.AtLeast{Min: 2}.Verify(data))
	assert.NoError(t, verify.AtLeast{Min: 0}.Verify(data))

	err := verify.AtLeast{Min: 3}.Verify(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Actual: 2, expected: at least 3")
}
