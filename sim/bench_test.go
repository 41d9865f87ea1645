package sim_test

import (
	"testing"

	"github.com/plus3/ticksim/sim"
)

func BenchmarkAddEntity(b *testing.B) {
	s := sim.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.AddEntity("Entity")
	}
}

func BenchmarkRemoveEntity(b *testing.B) {
	s := sim.New()

	refs := make([]*sim.EntityRef, b.N)
	for i := 0; i < b.N; i++ {
		refs[i] = s.AddEntity("Entity")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.RemoveEntity(refs[i])
	}
}

func BenchmarkTick(b *testing.B) {
	for _, n := range []int{100, 10_000} {
		b.Run(sizeName(n), func(b *testing.B) {
			s := sim.New()
			for range n {
				s.AddEntity("Entity")
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s.Tick()
			}
		})
	}
}

func BenchmarkTickWithChurn(b *testing.B) {
	s := sim.New()
	refs := make([]*sim.EntityRef, 0, 1000)
	for range 1000 {
		refs = append(refs, s.AddEntity("Entity"))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx := i % len(refs)
		s.RemoveEntity(refs[idx])
		refs[idx] = s.AddEntity("Entity")
		s.Tick()
	}
}

func sizeName(n int) string {
	if n >= 1000 {
		return "large"
	}
	return "small"
}
