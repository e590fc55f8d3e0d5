package grid

// Pair is the ping/pong buffer pair of a Jacobi run. Exactly one grid is
// "current" (read-from) and the other "next" (write-to); Swap exchanges the
// roles after each pass. The two grids never alias.
type Pair[T Elem] struct {
	cur, next *Grid[T]
}

func NewPair[T Elem](n, m int) (*Pair[T], error) {
	cur, err := New[T](n, m)
	if err != nil {
		return nil, err
	}
	next, err := New[T](n, m)
	if err != nil {
		return nil, err
	}
	return &Pair[T]{cur: cur, next: next}, nil
}

func (p *Pair[T]) Cur() *Grid[T]  { return p.cur }
func (p *Pair[T]) Next() *Grid[T] { return p.next }

func (p *Pair[T]) Swap() { p.cur, p.next = p.next, p.cur }

// Seed initializes both buffers identically: zero interior, top edge v.
// Seeding both matters for iters == 0 runs and mirrors the host testbench
// convention of copying the input buffer before the first pass.
func (p *Pair[T]) Seed(v float64) {
	p.cur.Seed(v)
	p.next.Seed(v)
}
