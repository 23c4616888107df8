// SPDX-License-Identifier: MIT
// Package: simmatch/problem
//
// problem.go — text reader and writers.

package problem

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/simmatch/matching"
)

// ErrMalformed indicates input that does not follow the critic/novel format.
var ErrMalformed = errors.New("problem: malformed input")

// maxLine bounds a single input line; 32 novel ids fit comfortably.
const maxLine = 1 << 20

// maxPrealloc caps the capacity reserved from the header count; append grows past it.
const maxPrealloc = 1 << 16

// Problem is one matching instance: the novel bound and each critic's liked novels.
type Problem struct {
	Novels      int
	Preferences [][]int
}

// Critics returns the number of critics.
func (p *Problem) Critics() int { return len(p.Preferences) }

// Read parses a problem. The header declares the critic count, which must
// match the number of preference lines that follow. An empty line is an
// empty preference set.
func Read(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return sc.Text(), true
	}

	header, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("problem: read header: %w", err)
		}
		return nil, fmt.Errorf("problem: empty input: %w", ErrMalformed)
	}
	nums, err := parseInts(header)
	if err != nil || len(nums) != 2 {
		return nil, fmt.Errorf("problem: line 1: want \"<critics> <novels>\", got %q: %w", header, ErrMalformed)
	}
	critics, novels := nums[0], nums[1]
	if critics < 0 {
		return nil, fmt.Errorf("problem: line 1: negative critic count %d: %w", critics, ErrMalformed)
	}

	p := &Problem{Novels: novels, Preferences: make([][]int, 0, min(critics, maxPrealloc))}
	for len(p.Preferences) < critics {
		text, ok := next()
		if !ok {
			break
		}
		ids, err := parseInts(text)
		if err != nil {
			return nil, fmt.Errorf("problem: line %d: %w: %v", line, ErrMalformed, err)
		}
		p.Preferences = append(p.Preferences, ids)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("problem: line %d: %w", line+1, err)
	}
	if len(p.Preferences) < critics {
		return nil, fmt.Errorf("problem: header declares %d critics, found %d: %w",
			critics, len(p.Preferences), ErrMalformed)
	}
	for {
		text, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(text) != "" {
			return nil, fmt.Errorf("problem: line %d: unexpected data after %d critics: %w", line, critics, ErrMalformed)
		}
	}

	return p, nil
}

// Write emits p in the input format.
func Write(w io.Writer, p *Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", p.Critics(), p.Novels)
	buf := make([]byte, 0, 64)
	for _, ids := range p.Preferences {
		buf = buf[:0]
		for i, id := range ids {
			if i > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(id), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}

	return bw.Flush()
}

// WritePairs emits one "a b" line per pair with 1-based critic numbers, a < b.
func WritePairs(w io.Writer, pairs []matching.Pair) error {
	bw := bufio.NewWriter(w)
	for _, pr := range pairs {
		a, b := pr.A, pr.B
		if a > b {
			a, b = b, a
		}
		fmt.Fprintf(bw, "%d %d\n", a+1, b+1)
	}

	return bw.Flush()
}

func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
