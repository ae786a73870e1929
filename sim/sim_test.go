package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineIdlesHigh(t *testing.T) {
	line := NewLine()
	rx := line.NewRxPin()

	level, err := rx.IsHigh()
	require.NoError(t, err)
	require.True(t, level, "unrecorded line should idle high")
}

func TestLineRecordsAndReplays(t *testing.T) {
	line := NewLine()
	tx := line.NewTxPin()
	timer := line.NewTimer()

	require.NoError(t, tx.SetLow())
	require.True(t, timer.Poll())
	require.NoError(t, tx.SetHigh())
	require.True(t, timer.Poll())

	require.Equal(t, []bool{false, true}, line.Levels())
	require.Equal(t, 2, line.Cell())

	line.Rewind()
	require.Equal(t, 0, line.Cell())

	rx := line.NewRxPin()
	level, err := rx.IsHigh()
	require.NoError(t, err)
	require.False(t, level)

	require.True(t, timer.Poll())
	level, err = rx.IsHigh()
	require.NoError(t, err)
	require.True(t, level)
}

func TestLineHoldsLevelAcrossSkippedCells(t *testing.T) {
	line := NewLine()
	tx := line.NewTxPin()
	timer := line.NewTimer()

	require.NoError(t, tx.SetLow())
	timer.Poll()
	timer.Poll()
	timer.Poll()
	require.NoError(t, tx.SetHigh())

	// Cells 1 and 2 were never driven; they hold the previous level.
	require.Equal(t, []bool{false, false, false, true}, line.Levels())
}

func TestSetLevelsRewinds(t *testing.T) {
	line := NewLine()
	timer := line.NewTimer()
	timer.Poll()
	timer.Poll()

	line.SetLevels([]bool{true, false})
	require.Equal(t, 0, line.Cell())
	require.Equal(t, []bool{true, false}, line.Levels())
}

func TestTimerCounters(t *testing.T) {
	line := NewLine()
	timer := line.NewTimer()

	timer.Reset()
	timer.Nop()
	timer.Nop()
	require.True(t, timer.Poll())

	require.Equal(t, 1, timer.Resets)
	require.Equal(t, 2, timer.Nops)
	require.Equal(t, 1, timer.Waits)
	require.Equal(t, 1, line.Cell())
}

func TestTxPinFaultInjection(t *testing.T) {
	line := NewLine()
	tx := line.NewTxPin()
	tx.FailOn = 2

	require.NoError(t, tx.SetLow())
	err := tx.SetHigh()
	require.ErrorIs(t, err, ErrInjected)
	require.Equal(t, 2, tx.Ops)

	// The failed operation must not reach the wire.
	require.Equal(t, []bool{false}, line.Levels())

	// Later operations keep failing.
	require.ErrorIs(t, tx.SetLow(), ErrInjected)
}

func TestRxPinFaultInjection(t *testing.T) {
	line := NewLine()
	line.SetLevels([]bool{false, true})
	rx := line.NewRxPin()
	rx.FailOn = 2

	_, err := rx.IsHigh()
	require.NoError(t, err)
	_, err = rx.IsHigh()
	require.ErrorIs(t, err, ErrInjected)
	require.Equal(t, 2, rx.Ops)
}
