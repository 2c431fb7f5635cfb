package rank_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mcdm/core"
	"github.com/katalvlaran/mcdm/rank"
)

// benchmarkRank runs one ranking method on a deterministic n×m matrix.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkRank(b *testing.B, method rank.Method, n, m int) {
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, m)
		for j := 0; j < m; j++ {
			// positive, non-constant cells keep every method's guard paths cold
			rows[i][j] = 1 + math.Abs(math.Sin(float64(i*m+j)))
		}
	}
	mat, err := core.NewMatrix(rows)
	if err != nil {
		b.Fatalf("NewMatrix failed: %v", err)
	}

	criteria := make([]core.Criterion, m)
	for j := range criteria {
		criteria[j] = core.Criterion{Weight: 1, Direction: core.Maximize}
		if j%3 == 0 {
			criteria[j].Direction = core.Minimize
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rank.Rank(string(method), mat, criteria); err != nil {
			b.Fatalf("%s failed: %v", method, err)
		}
	}
}

// BenchmarkSAW_Small benchmarks SAW on a 20×5 matrix.
func BenchmarkSAW_Small(b *testing.B) { benchmarkRank(b, rank.MethodSAW, 20, 5) }

// BenchmarkSAW_Large benchmarks SAW on a 500×20 matrix (the cell ceiling).
func BenchmarkSAW_Large(b *testing.B) { benchmarkRank(b, rank.MethodSAW, 500, 20) }

// BenchmarkTOPSIS_Small benchmarks TOPSIS on a 20×5 matrix.
func BenchmarkTOPSIS_Small(b *testing.B) { benchmarkRank(b, rank.MethodTOPSIS, 20, 5) }

// BenchmarkTOPSIS_Large benchmarks TOPSIS on a 500×20 matrix.
func BenchmarkTOPSIS_Large(b *testing.B) { benchmarkRank(b, rank.MethodTOPSIS, 500, 20) }

// BenchmarkVIKOR_Medium benchmarks VIKOR on a 100×10 matrix.
func BenchmarkVIKOR_Medium(b *testing.B) { benchmarkRank(b, rank.MethodVIKOR, 100, 10) }

// BenchmarkCODAS_Medium benchmarks CODAS, the only pairwise-quadratic
// method, on a 100×10 matrix.
func BenchmarkCODAS_Medium(b *testing.B) { benchmarkRank(b, rank.MethodCODAS, 100, 10) }

// BenchmarkARAS_Medium benchmarks ARAS on a 100×10 matrix.
func BenchmarkARAS_Medium(b *testing.B) { benchmarkRank(b, rank.MethodARAS, 100, 10) }
