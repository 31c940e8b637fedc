package check

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExit replaces osExit and stderr for the duration of the test and
// returns the captured stderr and exit codes.
func stubExit(t *testing.T) (*bytes.Buffer, *[]int) {
	t.Helper()
	var out bytes.Buffer
	var codes []int
	oldExit, oldStderr := osExit, stderr
	osExit = func(code int) { codes = append(codes, code) }
	stderr = &out
	t.Cleanup(func() {
		osExit, stderr = oldExit, oldStderr
	})
	return &out, &codes
}

func TestEQ_HandlerCalledOnce(t *testing.T) {
	out, codes := stubExit(t)

	var msgs []string
	c := New(func(msg string) { msgs = append(msgs, msg) })

	EQ(c, 2, 3)

	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "checker_test.go:")
	assert.Contains(t, msgs[0], "2 == 3")
	assert.Contains(t, msgs[0], "2 = 2, 3 = 3")

	// The handler returned, so Fatal must still terminate.
	assert.Contains(t, out.String(), "Error handler failure - exiting")
	assert.Equal(t, []int{1}, *codes)
}

func TestEQ_Passes(t *testing.T) {
	var calls int
	c := New(func(string) { calls++ })

	EQ(c, 3, 3)
	EQ(c, "a", "a")

	assert.Zero(t, calls)
}

func TestDefaultHandler(t *testing.T) {
	out, codes := stubExit(t)

	DefaultHandler("boom")

	assert.Equal(t, "Fatal Error: boom\n\n", out.String())
	assert.Equal(t, []int{1}, *codes)
}

func TestNew_NilHandler(t *testing.T) {
	c := New(nil)
	require.NotNil(t, c.Handler())

	out, codes := stubExit(t)
	c.Fatal("from nil handler")

	assert.Contains(t, out.String(), "Fatal Error: from nil handler")
	// DefaultHandler exits (stubbed), then Fatal exits again.
	assert.Equal(t, []int{1, 1}, *codes)
}

func TestChecker_SetHandler(t *testing.T) {
	c := New(PanicHandler)

	var got string
	c.SetHandler(func(msg string) { got = msg; panic(&Failure{Message: msg}) })

	err := Catch(func() { True(c, false) })
	require.Error(t, err)
	assert.Equal(t, err.Error(), got)
}

func TestCatch(t *testing.T) {
	c := New(PanicHandler)

	err := Catch(func() { NE(c, 1, 1) })
	require.Error(t, err)

	var f *Failure
	require.True(t, errors.As(err, &f))
	assert.Contains(t, f.Message, "1 != 1")

	assert.NoError(t, Catch(func() { NE(c, 1, 2) }))
}

func TestCatch_PropagatesOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "unrelated", func() {
		_ = Catch(func() { panic("unrelated") })
	})
}

func TestNilCheckerUsesDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(New(PanicHandler))

	err := Catch(func() { GT(nil, 1, 2) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 > 2")
}

func TestSetErrorHandler(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })
	SetDefault(New(nil))

	var got []string
	SetErrorHandler(func(msg string) {
		got = append(got, msg)
		panic(&Failure{Message: msg})
	})

	err := Catch(func() { Fatal("package level") })
	require.Error(t, err)
	assert.Equal(t, []string{"package level"}, got)
}

func TestSetDefault_Nil(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	SetDefault(nil)
	require.NotNil(t, Default())
	assert.NotNil(t, Default().Handler())
}

func TestFatalf(t *testing.T) {
	c := New(PanicHandler)
	err := Catch(func() { c.Fatalf("bad value %d", 7) })
	require.Error(t, err)
	assert.Equal(t, "bad value 7", err.Error())
}
