package demo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-fnkit/arr"
	"github.com/hasbyte1/go-fnkit/callable"
	"github.com/hasbyte1/go-fnkit/fn"
	"github.com/hasbyte1/go-fnkit/num"
	"github.com/hasbyte1/go-fnkit/str"
)

// Scenario is one named demonstration.
type Scenario struct {
	Name  string
	Title string
	run   func(r *Runner, w io.Writer) error
}

var catalog = []Scenario{
	{Name: "fizzbuzz", Title: "Fancy FizzBuzz", run: fizzBuzz},
	{Name: "counter", Title: "Functional objects", run: counter},
	{Name: "decomposition", Title: "Number decomposition", run: decomposition},
	{Name: "lambda", Title: "Lambda shortcut", run: sumOfSquares},
	{Name: "cards", Title: "Array manipulation", run: dealCards},
	{Name: "mergesort", Title: "Merge sort", run: mergeSort},
	{Name: "fuzzy", Title: "Fuzzy string match", run: fuzzyMatch},
	{Name: "indexing", Title: "Array indexing", run: indexing},
}

// Names lists every scenario name in run order.
func Names() []string {
	return arr.Map(catalog, func(s Scenario, _ int) string { return s.Name })
}

// ─────────────────────────────────────────────────────────────────────────────
// Scenarios
// ─────────────────────────────────────────────────────────────────────────────

func fizzBuzz(r *Runner, w io.Writer) error {
	multipleOf := func(k int) func(n ...int) bool {
		return func(n ...int) bool { return num.MultipleOf(float64(n[0]), float64(k)) }
	}
	dispatch := fn.NewDispatcher(
		fn.When(multipleOf(num.LCM(3, 5)), fn.Constant[int]("FizzBuzz")),
		fn.When(multipleOf(5), fn.Constant[int]("Buzz")),
		fn.When(multipleOf(3), fn.Constant[int]("Fizz")),
		fn.Otherwise(func(n ...int) string { return strconv.Itoa(n[0]) }),
	).WithLogger(r.log.WithName("fizzbuzz"))

	out := arr.Map(num.Range(1, r.cfg.FizzBuzzLimit+1), func(n, _ int) string {
		s, _ := dispatch.Dispatch(n)
		return s
	})
	_, err := fmt.Fprintln(w, strings.Join(out, ", "))
	return err
}

func counter(_ *Runner, w io.Writer) error {
	count, err := fn.From(callable.Props{
		"state": 0,
		callable.Key: func(self callable.Props, _ ...any) any {
			self["state"] = self["state"].(int) + 1
			return self["state"]
		},
	})
	if err != nil {
		return err
	}
	for i := 0; i < 3; i++ {
		v, err := count.Invoke()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}

func decomposition(_ *Runner, w io.Writer) error {
	n := -23.47
	s, i, f := num.Sign(n), num.IntegerPart(n), num.FractionalPart(n)
	m := s * (i + f)
	_, err := fmt.Fprintf(w, "%v = %v * (%v + %v) → %v\n", n, s, i, f, m)
	return err
}

func sumOfSquares(r *Runner, w io.Writer) error {
	square, err := r.compiler.Compile("$ * $")
	if err != nil {
		return err
	}
	add, err := r.compiler.Compile("$ + $$")
	if err != nil {
		return err
	}

	n := r.cfg.SquaresN
	closed := n * (n - 1) * (2*n - 1) / 6

	var total any = 0
	for _, i := range num.Range(n) {
		sq, err := square.Invoke(i)
		if err != nil {
			return err
		}
		if total, err = add.Invoke(total, sq); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%v %t\n", total, total == any(closed))
	return err
}

func dealCards(r *Runner, w io.Writer) error {
	rng := r.rand()
	suits := strings.Split("♠♥♦♣", "")
	ranks := append(
		arr.Map(num.Range(2, 11), func(n, _ int) string { return strconv.Itoa(n) }),
		strings.Split("JQKA", "")...,
	)
	deck := arr.Map(arr.CartesianProduct(suits, ranks), func(card []string, _ int) string {
		return strings.Join(card, "")
	})

	// shuffle, then cut
	deck = arr.ShuffleWith(deck, rng)
	deck = arr.Rotate(deck, rng.Intn(len(deck)))

	players := r.cfg.Players
	dealt, deck := arr.SplitAt(deck, 2*len(players))
	rounds := arr.Chunk(dealt, len(players))
	hands := arr.Zip(rounds[0], rounds[1])
	for i, p := range players {
		if _, err := fmt.Fprintf(w, "%s: %s %s\n", p, hands[i].First, hands[i].Second); err != nil {
			return err
		}
	}

	flop, deck := arr.SplitAt(arr.Drop(deck, 1), 3)
	turn, deck := arr.SplitAt(arr.Drop(deck, 1), 1)
	river, _ := arr.SplitAt(arr.Drop(deck, 1), 1)
	_, err := fmt.Fprintf(w, "flop %s, turn %s, river %s\n",
		strings.Join(flop, " "), turn[0], river[0])
	return err
}

func mergeSort(r *Runner, w io.Writer) error {
	var merge func(a, b []int) []int
	table := fn.NewDispatcher(
		fn.When(
			func(l ...[]int) bool { return len(l[0]) == 0 || len(l[1]) == 0 },
			func(l ...[]int) []int { return append(append([]int{}, l[0]...), l[1]...) },
		),
		fn.When(
			func(l ...[]int) bool { return l[0][0] <= l[1][0] },
			func(l ...[]int) []int { return append([]int{l[0][0]}, merge(l[0][1:], l[1])...) },
		),
		fn.Otherwise(func(l ...[]int) []int { return merge(l[1], l[0]) }),
	)
	merge = func(a, b []int) []int {
		out, _ := table.Dispatch(a, b)
		return out
	}

	var sort func([]int) []int
	sort = func(l []int) []int {
		if len(l) <= 1 {
			return l
		}
		left, right := arr.SplitAt(l, len(l)/2)
		return merge(sort(left), sort(right))
	}

	input := arr.ShuffleWith(num.Range(10), r.rand())
	_, err := fmt.Fprintln(w, input, "→", sort(input))
	return err
}

func fuzzyMatch(r *Runner, w io.Writer) error {
	fold := func(s string) string { return strings.ToLower(str.RemoveDiacritics(s)) }
	term := fold(r.cfg.SearchTerm)

	scores := arr.Map(r.cfg.Names, func(name string, _ int) float64 {
		return str.Similarity(term, fold(name))
	})
	ranked := arr.Sort(arr.Zip(scores, r.cfg.Names), func(a, b arr.Pair[float64, string]) bool {
		return a.First > b.First
	})
	for _, p := range arr.Take(ranked, 3) {
		if _, err := fmt.Fprintf(w, "%.4f %s\n", p.First, p.Second); err != nil {
			return err
		}
	}
	return nil
}

func indexing(_ *Runner, w io.Writer) error {
	squares := arr.Map(num.Range(10), func(i, _ int) int { return i * i })
	odd := num.Range(1, 10, 2)
	_, err := fmt.Fprintln(w, squares, odd, arr.AtMany(squares, odd))
	return err
}
