package ntt_test

import (
	"sync"
	"testing"

	"github.com/Rohith04MVK/kyberntt/internal/polysample"
	"github.com/Rohith04MVK/kyberntt/ntt"
)

func benchmarkTransform(b *testing.B, op func(p *ntt.Poly)) {
	src := polysample.Centered([]byte("bench"), 0)
	for i := 0; i < b.N; i++ {
		p := src
		op(&p)
	}
}

func BenchmarkNTT(b *testing.B)          { benchmarkTransform(b, ntt.NTT) }
func BenchmarkInvNTT(b *testing.B)       { benchmarkTransform(b, ntt.InvNTT) }
func BenchmarkInvNTTToMont(b *testing.B) { benchmarkTransform(b, ntt.InvNTTToMont) }

func BenchmarkBaseMul(b *testing.B) {
	x := polysample.Centered([]byte("bench"), 0)
	y := polysample.Centered([]byte("bench"), 1)
	ntt.NTT(&x)
	ntt.NTT(&y)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ntt.BaseMul(&x, &y)
	}
}

func BenchmarkMontgomeryReduce(b *testing.B) {
	var sink int16
	for i := 0; i < b.N; i++ {
		sink ^= ntt.MontgomeryReduce(int32(i) * 1021)
	}
	_ = sink
}

// Independent goroutines share only the zeta table.
func TestConcurrentTransforms(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan int, 16)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for r := 0; r < 50; r++ {
				p := polysample.Centered([]byte("concurrent"), byte(g))
				want := p
				ntt.NTT(&p)
				ntt.InvNTT(&p)
				if !p.Equal(&want) {
					errs <- g
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)
	for g := range errs {
		t.Errorf("round trip failed in goroutine %d", g)
	}
}
