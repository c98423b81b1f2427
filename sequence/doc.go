/*
Package sequence implements a lazy generator of the Kolakoski sequence, the
self-describing sequence over the alphabet {1, 2} whose run lengths spell out
the sequence itself:

	1 2 2 1 1 2 1 2 2 1 2 2 1 1 2 ...

It defines the type Run, a run of one or two identical symbols, and the type
Generator, which produces runs one at a time using only its own history of
emitted symbols.

A Generator follows an append-only pattern and cannot be rewound. A fresh
traversal requires a fresh Generator. Bounding the number of runs is left to
the caller, either by calling Next a fixed number of times or by composing
All with Take:

	g := sequence.New()
	for r := range sequence.Take(g.All(), 10) {
		fmt.Println(r)
	}

A Generator is not safe for concurrent use. Independent generators share no
state and can be driven from different goroutines.
*/
package sequence
