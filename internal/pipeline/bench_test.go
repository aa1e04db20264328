package pipeline

import (
	"testing"

	"github.com/theirongolddev/launchdash/internal/model"
)

func BenchmarkLoad(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Load(fixture, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDerivePie(b *testing.B) {
	tbl := loadFixture(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DerivePie(tbl, model.AllSites)
	}
}

func BenchmarkDeriveScatter(b *testing.B) {
	tbl := loadFixture(b)
	sel := tbl.FullSelection()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DeriveScatter(tbl, sel)
	}
}
