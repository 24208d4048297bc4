package piece

import "math/rand/v2"

// Source picks the type of each new piece. Next must return a valid Type; New panics on anything
// else.
type Source interface {
	Next() Type
}

// RandSource picks uniformly among all types. It makes no bag-style fairness guarantee.
type RandSource struct {
	rng *rand.Rand
}

func NewRandSource(seed uint64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *RandSource) Next() Type {
	return Type(s.rng.IntN(NumTypes))
}

// Sequence replays a fixed list of types, wrapping around at the end.
type Sequence struct {
	types []Type
	i     int
}

// NewSequence drops invalid types. A sequence with nothing left replays O.
func NewSequence(types ...Type) *Sequence {
	valid := make([]Type, 0, len(types))
	for _, t := range types {
		if t.Valid() {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		valid = []Type{O}
	}
	return &Sequence{types: valid}
}

func (s *Sequence) Next() Type {
	t := s.types[s.i%len(s.types)]
	s.i++
	return t
}
