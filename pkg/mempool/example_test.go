package mempool_test

import (
	"bytes"
	"fmt"

	"github.com/ajitpratap0/mempool/pkg/mempool"
)

func ExamplePool() {
	pool := mempool.New(
		func() *bytes.Buffer { return bytes.NewBuffer(make([]byte, 0, 1024)) },
		mempool.WithReset(func(b *bytes.Buffer) { b.Reset() }),
	)

	g := pool.MustGet()
	g.Value().WriteString("hello")
	fmt.Println(g.Value().String())
	g.Release()

	// The released buffer is reused, arriving reset.
	g = pool.MustGet()
	fmt.Println(g.Value().Len())
	g.Release()

	fmt.Println(pool.Stats().Constructed)
	// Output:
	// hello
	// 0
	// 1
}

func ExamplePool_With() {
	pool := mempool.New(func() *bytes.Buffer { return &bytes.Buffer{} })

	err := pool.With(func(b *bytes.Buffer) error {
		b.WriteString("scoped")
		fmt.Println(b.String())
		return nil
	})
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// scoped
}

func ExampleAffinePool() {
	pool := mempool.NewAffine(func() []byte { return make([]byte, 0, 4096) })

	// The same goroutine always sees the same scratch slice.
	first := pool.MustGet()
	second := pool.MustGet()
	fmt.Println(first == second)
	// Output:
	// true
}
