// Copyright 2020 Aleksandr Demakin. All rights reserved.

package numeral

// register is a double-ended sequence of digit values, least significant first.
// Both ends grow in amortized O(1).
type register struct {
	buf        []int
	head, tail int
}

func (r *register) len() int {
	return r.tail - r.head
}

func (r *register) at(i int) int {
	return r.buf[r.head+i]
}

func (r *register) set(i, v int) {
	r.buf[r.head+i] = v
}

func (r *register) pushBack(v int) {
	if r.tail == len(r.buf) {
		r.grow()
	}
	r.buf[r.tail] = v
	r.tail++
}

func (r *register) pushFront(v int) {
	if r.head == 0 {
		r.grow()
	}
	r.head--
	r.buf[r.head] = v
}

func (r *register) popBack() {
	r.tail--
}

func (r *register) popFront() {
	r.head++
}

func (r *register) reset() {
	r.head = len(r.buf) / 2
	r.tail = r.head
}

// grow reallocates the buffer leaving free space at both ends.
func (r *register) grow() {
	l := r.len()
	size := 2*l + 8
	buf := make([]int, size)
	head := (size - l) / 2
	copy(buf[head:], r.buf[r.head:r.tail])
	r.buf, r.head, r.tail = buf, head, head+l
}

func (r *register) clone() register {
	buf := make([]int, len(r.buf))
	copy(buf, r.buf)
	return register{buf: buf, head: r.head, tail: r.tail}
}
