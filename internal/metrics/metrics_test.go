// SPDX-License-Identifier: MIT
package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)

	r.Observe("strassen", 8, 2*time.Millisecond, ResultOK)
	r.Observe("strassen", 8, 3*time.Millisecond, ResultOK)
	r.Observe("naive", 8, time.Millisecond, ResultMismatch)

	mfs, err := r.Registry().Gather()
	require.NoError(t, err)

	byName := map[string]int{}
	for _, mf := range mfs {
		byName[mf.GetName()] = len(mf.GetMetric())
		if mf.GetName() == "clrs_multiply_duration_seconds" {
			require.Len(t, mf.GetMetric(), 1) // mismatches are not timed
			require.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
		if mf.GetName() == "clrs_multiply_runs_total" {
			var total float64
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
			require.Equal(t, 3.0, total)
		}
	}
	require.Equal(t, 1, byName["clrs_multiply_duration_seconds"])
	require.Equal(t, 2, byName["clrs_multiply_runs_total"])
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)
	r.Observe("recursive", 16, time.Millisecond, ResultOK)
	r.MarkRun(time.Unix(1700000000, 0))

	p := filepath.Join(t.TempDir(), "strassen.prom")
	require.NoError(t, r.WriteTextfile(p))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, `clrs_multiply_duration_seconds_count{algorithm="recursive",size="16"} 1`)
	require.Contains(t, out, `clrs_multiply_runs_total{algorithm="recursive",result="ok"} 1`)
	require.Contains(t, out, "clrs_bench_last_run_timestamp_seconds 1.7e+09")
}

func TestRecorder_WriteTextfileError(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)
	err = r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"))
	require.Error(t, err)
}
