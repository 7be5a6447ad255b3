package guess

import "testing"

func BenchmarkNormalize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Normalize("Guarda-Chuva CORAÇÃO d'água")
	}
}

func benchmarkEvaluate(b *testing.B, raw string) {
	m := DefaultMatcher()
	answers := []string{"cachorro", "papagaio", "elefante", "tartaruga", "jacare"}
	solved := map[string]struct{}{"papagaio": {}}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Evaluate(raw, answers, solved)
	}
}

func BenchmarkEvaluate_Exact(b *testing.B) { benchmarkEvaluate(b, "jacaré") }
func BenchmarkEvaluate_Near(b *testing.B)  { benchmarkEvaluate(b, "tartarugas") }
func BenchmarkEvaluate_Miss(b *testing.B)  { benchmarkEvaluate(b, "hipopotamo") }
