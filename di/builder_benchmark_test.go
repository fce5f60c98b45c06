package di_test

import (
	"reflect"
	"testing"

	"github.com/sghaida/adi/di"
)

/*
   Shared state (NOT counted in benchmarks)
*/

var benchOverrides = di.NewOverrides().ByName("Message", "bench")

/*
   Benchmarks
*/

func BenchmarkBuild_TrivialClass(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := di.Build[C](nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_TwoLevelGraph(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := di.Build[ADirect](nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_WithOverrides(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := di.Build[BTyped](benchOverrides); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_ForwardReference(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := di.Build[B](nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSignatureOf(b *testing.B) {
	t := reflect.TypeOf(BTyped{})
	for i := 0; i < b.N; i++ {
		if _, ok := di.SignatureOf(t); !ok {
			b.Fatal("no signature")
		}
	}
}
