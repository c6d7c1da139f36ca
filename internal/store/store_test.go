package store

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/siunit/internal/harness"
	"github.com/roach88/siunit/internal/testutil"
	"github.com/roach88/siunit/internal/unit"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "history.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_Pragmas(t *testing.T) {
	s := openTestStore(t)

	assert.NoError(t, s.verifyPragma("journal_mode", "wal"))
	assert.NoError(t, s.verifyPragma("synchronous", "1"))
	assert.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	assert.NoError(t, s.verifyPragma("foreign_keys", "1"))
	assert.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	first, err := Open(path, WithIDGenerator(testutil.NewFixedIDGenerator("run-a")))
	require.NoError(t, err)
	_, err = first.RecordRun(context.Background(), Run{Scenario: "x", Pass: true})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	runs, err := second.ListRuns(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-a", runs[0].ID)
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestClose_NilDB(t *testing.T) {
	assert.NoError(t, (&Store{}).Close())
}

func TestRecordRun_AssignsSeq(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, WithIDGenerator(testutil.NewSequentialIDGenerator("run")))

	for i, name := range []string{"a", "b", "a"} {
		run, err := s.RecordRun(ctx, Run{Scenario: name, Pass: true})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), run.Seq)
	}

	runs, err := s.ListRuns(ctx, "")
	require.NoError(t, err)
	require.Len(t, runs, 3)
	for i, run := range runs {
		assert.Equal(t, int64(i+1), run.Seq)
	}
	assert.Equal(t, "run-0001", runs[0].ID)

	onlyA, err := s.ListRuns(ctx, "a")
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	assert.Equal(t, []int64{1, 3}, []int64{onlyA[0].Seq, onlyA[1].Seq})
}

func TestRecordRun_KeepsCallerID(t *testing.T) {
	s := openTestStore(t, WithIDGenerator(testutil.NewFixedIDGenerator()))

	run, err := s.RecordRun(context.Background(), Run{ID: "mine", Scenario: "x"})
	require.NoError(t, err)
	assert.Equal(t, "mine", run.ID)
}

func TestRecordRun_Validation(t *testing.T) {
	s := openTestStore(t)

	_, err := s.RecordRun(context.Background(), Run{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario name is required")
}

func TestRecordRun_DuplicateQuantityRollsBack(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, WithIDGenerator(testutil.NewFixedIDGenerator("r1", "r2")))

	_, err := s.RecordRun(ctx, Run{
		Scenario: "dup",
		Quantities: []Quantity{
			{Name: "a", Dimension: unit.Meter.Composite()},
			{Name: "a", Dimension: unit.Meter.Composite()},
		},
	})
	require.Error(t, err)

	runs, err := s.ListRuns(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, runs)

	// The failed run did not consume a seq.
	run, err := s.RecordRun(ctx, Run{Scenario: "ok"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), run.Seq)
}

func TestReadRun_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, WithIDGenerator(testutil.NewFixedIDGenerator("run-1")))

	mJ := unit.Joule.Composite().Multiply(unit.Meter.Composite())
	recorded, err := s.RecordRun(ctx, Run{
		Scenario: "mixed",
		Pass:     false,
		Errors:   []string{"first", "second"},
		Quantities: []Quantity{
			{Name: "z", Value: 2, Dimension: unit.Second.Composite(), Rendered: "s"},
			{Name: "a", Value: 54, Dimension: mJ, Rendered: "m J"},
		},
	})
	require.NoError(t, err)

	got, err := s.ReadRun(ctx, recorded.ID)
	require.NoError(t, err)

	assert.Equal(t, "mixed", got.Scenario)
	assert.False(t, got.Pass)
	assert.Equal(t, []string{"first", "second"}, got.Errors)
	assert.Equal(t, int64(1), got.Seq)

	require.Len(t, got.Quantities, 2)
	assert.Equal(t, "a", got.Quantities[0].Name)
	assert.Equal(t, 54.0, got.Quantities[0].Value)
	assert.True(t, got.Quantities[0].Dimension.StructurallyEqual(mJ))
	assert.Equal(t, "m J", got.Quantities[0].Rendered)
	assert.Equal(t, "z", got.Quantities[1].Name)
}

func TestReadRun_NoQuantities(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	recorded, err := s.RecordRun(ctx, Run{Scenario: "empty", Pass: true})
	require.NoError(t, err)

	got, err := s.ReadRun(ctx, recorded.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Quantities)
	assert.Empty(t, got.Errors)
}

func TestReadRun_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.ReadRun(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestRunFromResult(t *testing.T) {
	scenario, err := harness.Load("../harness/testdata/scenarios/power.yaml")
	require.NoError(t, err)
	result, err := harness.Run(scenario)
	require.NoError(t, err)

	ctx := context.Background()
	s := openTestStore(t, WithIDGenerator(testutil.NewFixedIDGenerator("power-1")))

	recorded, err := s.RecordRun(ctx, RunFromResult(scenario.Name, result))
	require.NoError(t, err)

	got, err := s.ReadRun(ctx, recorded.ID)
	require.NoError(t, err)
	assert.True(t, got.Pass)
	require.Len(t, got.Quantities, len(result.Quantities))
	for i, q := range result.Quantities {
		assert.Equal(t, q.Name, got.Quantities[i].Name)
		assert.True(t, q.Dimension.StructurallyEqual(got.Quantities[i].Dimension))
	}
}

func TestCodec_Deterministic(t *testing.T) {
	c := unit.Composite{Base: unit.Vector{unit.Kilogram: 1, unit.Meter: 2, unit.Second: -3}}
	c.Slots[unit.Joule] = 1
	c.Slots[unit.Farad] = -2

	base1, slots1, err := encodeDimension(c)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		base2, slots2, err := encodeDimension(c)
		require.NoError(t, err)
		assert.True(t, bytes.Equal(base1, base2))
		assert.True(t, bytes.Equal(slots1, slots2))
	}

	got, err := decodeDimension(base1, slots1)
	require.NoError(t, err)
	assert.True(t, got.StructurallyEqual(c))
}

func TestCodec_RejectsMisplacedSymbols(t *testing.T) {
	named, err := encodeExponents(map[string]int{"J": 1})
	require.NoError(t, err)
	axis, err := encodeExponents(map[string]int{"m": 1})
	require.NoError(t, err)
	empty, err := encodeExponents(map[string]int{})
	require.NoError(t, err)

	_, err = decodeDimension(named, empty)
	assert.ErrorContains(t, err, "named unit in base blob")

	_, err = decodeDimension(empty, axis)
	assert.ErrorContains(t, err, "base axis in slots blob")

	_, err = decodeDimension([]byte{0xc1}, empty)
	assert.ErrorContains(t, err, "decode exponents")
}

func TestReadQueries_Prepare(t *testing.T) {
	s := openTestStore(t)

	for name, query := range map[string]string{
		"listRuns":         listRunsQuery,
		"listScenarioRuns": listScenarioRunsQuery,
		"readRun":          readRunQuery,
		"readQuantities":   readQuantitiesQuery,
	} {
		t.Run(name, func(t *testing.T) {
			stmt, err := s.db.Prepare(query)
			require.NoError(t, err)
			assert.NoError(t, stmt.Close())
		})
	}
}

func TestListRuns_SeqOrderBeatsIDOrder(t *testing.T) {
	ctx := context.Background()
	// IDs sort in the opposite order to insertion.
	s := openTestStore(t, WithIDGenerator(testutil.NewFixedIDGenerator("run-c", "run-b", "run-a")))

	for range 3 {
		_, err := s.RecordRun(ctx, Run{Scenario: "order", Pass: true})
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(ctx, "order")
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"run-c", "run-b", "run-a"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})
	assert.Equal(t, []int64{1, 2, 3}, []int64{runs[0].Seq, runs[1].Seq, runs[2].Seq})
}

func TestReadRun_QuantitiesInByteOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, WithIDGenerator(testutil.NewFixedIDGenerator("bytes")))

	var quantities []Quantity
	for _, name := range []string{"b", "Z", "a", "B"} {
		quantities = append(quantities, Quantity{Name: name, Dimension: unit.Meter.Composite(), Rendered: "m"})
	}
	recorded, err := s.RecordRun(ctx, Run{Scenario: "bytes", Quantities: quantities})
	require.NoError(t, err)

	got, err := s.ReadRun(ctx, recorded.ID)
	require.NoError(t, err)

	var names []string
	for _, q := range got.Quantities {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"B", "Z", "a", "b"}, names)
}
