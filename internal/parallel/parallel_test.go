package parallel

import (
	"sync/atomic"
	"testing"
)

func TestForRowsCoversEveryRowOnce(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const rows = 1000
	var hits [rows]int32

	p.ForRows(0, rows, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&hits[y], 1)
		}
	})

	for y, n := range hits {
		if n != 1 {
			t.Fatalf("row %d executed %d times, want 1", y, n)
		}
	}
}

func TestForRowsOffsetRange(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const lo, hi = 37, 412
	var hits [hi]int32

	p.ForRows(lo, hi, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&hits[y], 1)
		}
	})

	for y := 0; y < hi; y++ {
		want := int32(0)
		if y >= lo {
			want = 1
		}
		if hits[y] != want {
			t.Fatalf("row %d executed %d times, want %d", y, hits[y], want)
		}
	}
}

func TestForRowsEmptyRange(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	called := false
	p.ForRows(5, 5, func(y0, y1 int) { called = true })
	p.ForRows(5, 3, func(y0, y1 int) { called = true })

	if called {
		t.Error("ForRows invoked fn for an empty range")
	}
}

func TestForRowsSmallRangeRunsInline(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	// Below the split threshold the callback runs once, on the calling
	// goroutine, with the full range.
	calls := 0
	p.ForRows(0, minRowsPerTask, func(y0, y1 int) {
		calls++
		if y0 != 0 || y1 != minRowsPerTask {
			t.Errorf("inline range = [%d, %d), want [0, %d)", y0, y1, minRowsPerTask)
		}
	})

	if calls != 1 {
		t.Errorf("small range split into %d calls, want 1", calls)
	}
}

func TestForRowsMatchesSequential(t *testing.T) {
	p := NewPool(8)
	defer p.Close()

	const rows, cols = 257, 64
	parallel := make([]int, rows*cols)
	sequential := make([]int, rows*cols)

	fill := func(buf []int) func(y0, y1 int) {
		return func(y0, y1 int) {
			for y := y0; y < y1; y++ {
				for x := 0; x < cols; x++ {
					buf[y*cols+x] = y*31 + x
				}
			}
		}
	}

	p.ForRows(0, rows, fill(parallel))
	fill(sequential)(0, rows)

	for i := range parallel {
		if parallel[i] != sequential[i] {
			t.Fatalf("cell %d = %d, want %d", i, parallel[i], sequential[i])
		}
	}
}

func TestWorkersDefault(t *testing.T) {
	p := NewPool(0)
	defer p.Close()

	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
}

func TestSingleWorkerPool(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	var rows int
	p.ForRows(0, 100, func(y0, y1 int) { rows += y1 - y0 })

	if rows != 100 {
		t.Errorf("covered %d rows, want 100", rows)
	}
}

func TestCloseIdempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	// Second Close must not panic or block.
	p.Close()
}

func TestForRowsAfterCloseRunsInline(t *testing.T) {
	p := NewPool(4)
	p.Close()

	var rows int
	p.ForRows(0, 200, func(y0, y1 int) { rows += y1 - y0 })

	if rows != 200 {
		t.Errorf("covered %d rows after Close, want 200", rows)
	}
}

func BenchmarkForRows(b *testing.B) {
	p := NewPool(0)
	defer p.Close()

	buf := make([]uint32, 1080*1920)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.ForRows(0, 1080, func(y0, y1 int) {
			row := buf[y0*1920 : y1*1920]
			for j := range row {
				row[j] = 0xFF000000
			}
		})
	}
}
