package lambda_test

import (
	"testing"

	"github.com/hasbyte1/go-fnkit/lambda"
)

func BenchmarkCompileUncached(b *testing.B) {
	opts := lambda.DefaultOptions()
	opts.DisableCache = true
	c, err := lambda.NewCompiler(opts)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Compile("$ * $$ + max($$$, 1)"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompileCached(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := lambda.Compile("$ * $$ + max($$$, 1)"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInvoke(b *testing.B) {
	add := lambda.MustCompile("$ + $$")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := add.Invoke(i, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMaxRun(b *testing.B) {
	for i := 0; i < b.N; i++ {
		lambda.MaxRun("$ + $$ * $$$ - $$$$ / $$$$$", '$')
	}
}
