package MHD

import "sync"

// ParallelBackend selects how ParallelFor3D dispatches its body. This is
// the thin capability layer named in spec.md §9's Design Notes -- a stand-in
// for "CPU threads" vs "GPU" vs "single-threaded", following the shape of
// the teacher's ShardByK shape (model_problems/Euler2D/parallelism.go) wired
// to goroutines the way model_problems/Euler2D/euler.go actually fans them
// out: shard the outer index, run each shard on its own goroutine, and join
// with a sync.WaitGroup. A
// genuine GPU backend would satisfy the same signature from outside this
// package; the core only ever calls through this abstraction.
type ParallelBackend int

const (
	BackendSerial ParallelBackend = iota
	BackendThreaded
)

// ParallelFor3D invokes body(k,j,i) for every (k,j,i) in the half-open box
// [kRange[0],kRange[1]) x [jRange[0],jRange[1]) x [iRange[0],iRange[1]).
// body must be free of inter-iteration dependencies on arrays it writes --
// the outer (k) index is what gets sharded across goroutines under
// BackendThreaded, so writes from different k never race.
func ParallelFor3D(pf ParallelBackend, kRange, jRange, iRange [2]int, body func(k, j, i int)) {
	kBeg, kEnd := kRange[0], kRange[1]
	if pf == BackendSerial || kEnd-kBeg <= 1 {
		for k := kBeg; k < kEnd; k++ {
			for j := jRange[0]; j < jRange[1]; j++ {
				for i := iRange[0]; i < iRange[1]; i++ {
					body(k, j, i)
				}
			}
		}
		return
	}

	nWorkers := kEnd - kBeg
	var wg sync.WaitGroup
	wg.Add(nWorkers)
	for k := kBeg; k < kEnd; k++ {
		k := k
		go func() {
			defer wg.Done()
			for j := jRange[0]; j < jRange[1]; j++ {
				for i := iRange[0]; i < iRange[1]; i++ {
					body(k, j, i)
				}
			}
		}()
	}
	wg.Wait()
}

// SequentialInnerFor3D parallelizes only the outer (k,j) index pair and runs
// the inner direction sequentially within each worker. This is the shape
// C7's inside-out ghost-face extrapolation requires (spec.md §5): the inner
// direction carries a genuine dependency on the previous inner iterate, so
// it cannot be split across workers the way ParallelFor3D splits k.
func SequentialInnerFor3D(pf ParallelBackend, kRange, jRange [2]int, innerBody func(k, j int)) {
	if pf == BackendSerial {
		for k := kRange[0]; k < kRange[1]; k++ {
			for j := jRange[0]; j < jRange[1]; j++ {
				innerBody(k, j)
			}
		}
		return
	}
	var wg sync.WaitGroup
	for k := kRange[0]; k < kRange[1]; k++ {
		for j := jRange[0]; j < jRange[1]; j++ {
			k, j := k, j
			wg.Add(1)
			go func() {
				defer wg.Done()
				innerBody(k, j)
			}()
		}
	}
	wg.Wait()
}
