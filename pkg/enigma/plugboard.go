package enigma

import (
	"fmt"
)

const MaxPlugboardPairs = 10

const unplugged = -1

type Pair struct {
	A rune
	B rune
}

func (p Pair) String() string {
	return string([]rune{p.A, p.B})
}

type Plugboard struct {
	sockets [alphabetSize]int
	pairs   int
}

func NewPlugboard() *Plugboard {
	pb := &Plugboard{}
	for i := range pb.sockets {
		pb.sockets[i] = unplugged
	}
	return pb
}

func (pb *Plugboard) AddConnection(a, b rune) error {
	left, ok := letterIndex(a)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLetter, a)
	}
	right, ok := letterIndex(b)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLetter, b)
	}
	if left == right {
		return fmt.Errorf("%w: %c", ErrSameLetter, indexLetter(left))
	}
	for _, idx := range []int{left, right} {
		if pb.sockets[idx] != unplugged {
			return fmt.Errorf("%w: %c", ErrLetterConnected, indexLetter(idx))
		}
	}
	if pb.pairs >= MaxPlugboardPairs {
		return ErrTooManyPairs
	}
	pb.sockets[left] = right
	pb.sockets[right] = left
	pb.pairs++
	return nil
}

func (pb *Plugboard) RemoveConnection(a rune) error {
	idx, ok := letterIndex(a)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLetter, a)
	}
	partner := pb.sockets[idx]
	if partner == unplugged {
		return fmt.Errorf("%w: %c", ErrLetterNotConnected, indexLetter(idx))
	}
	pb.sockets[idx] = unplugged
	pb.sockets[partner] = unplugged
	pb.pairs--
	return nil
}

func (pb *Plugboard) Encrypt(letter rune) rune {
	idx, ok := letterIndex(letter)
	if !ok {
		return letter
	}
	if partner := pb.sockets[idx]; partner != unplugged {
		return indexLetter(partner)
	}
	return indexLetter(idx)
}

func (pb *Plugboard) Len() int {
	return pb.pairs
}

// Pairs lists the connections ordered by the lower letter of each pair.
func (pb *Plugboard) Pairs() []Pair {
	pairs := make([]Pair, 0, pb.pairs)
	for idx, partner := range pb.sockets {
		if partner != unplugged && idx < partner {
			pairs = append(pairs, Pair{A: indexLetter(idx), B: indexLetter(partner)})
		}
	}
	return pairs
}
