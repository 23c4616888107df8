// SPDX-License-Identifier: MIT

package problem_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/simmatch/matching"
	"github.com/katalvlaran/simmatch/problem"
)

// ProblemSuite covers the text format.
type ProblemSuite struct {
	suite.Suite
}

// TestReadSample parses the three-critic sample.
func (s *ProblemSuite) TestReadSample() {
	p, err := problem.Read(strings.NewReader("3 2\n1\n1 2\n2\n"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, p.Novels)
	require.Equal(s.T(), 3, p.Critics())
	require.Equal(s.T(), [][]int{{1}, {1, 2}, {2}}, p.Preferences)
}

// TestReadTolerance accepts extra spaces, CRLF, empty preference lines and trailing blanks.
func (s *ProblemSuite) TestReadTolerance() {
	p, err := problem.Read(strings.NewReader("  2   4 \r\n 3  1\r\n\n\n   \n"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]int{{3, 1}, {}}, p.Preferences)
}

// TestReadNoFinalNewline parses input without a trailing newline.
func (s *ProblemSuite) TestReadNoFinalNewline() {
	p, err := problem.Read(strings.NewReader("1 3\n1 2 3"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), [][]int{{1, 2, 3}}, p.Preferences)
}

// TestReadZeroCritics is a valid, empty instance.
func (s *ProblemSuite) TestReadZeroCritics() {
	p, err := problem.Read(strings.NewReader("0 5\n"))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, p.Critics())
}

// TestReadMalformed rejects every broken shape with ErrMalformed.
func (s *ProblemSuite) TestReadMalformed() {
	cases := map[string]string{
		"empty":          "",
		"short header":   "3\n",
		"long header":    "3 2 1\n",
		"text header":    "three two\n",
		"negative":       "-1 2\n",
		"missing critic": "3 2\n1\n2\n",
		"bad id":         "2 2\n1\nx\n",
		"extra data":     "1 2\n1\n2\n",
	}
	for name, in := range cases {
		_, err := problem.Read(strings.NewReader(in))
		require.Error(s.T(), err, name)
		require.True(s.T(), errors.Is(err, problem.ErrMalformed), "%s: %v", name, err)
	}
}

// TestReadReportsLine names the offending line.
func (s *ProblemSuite) TestReadReportsLine() {
	_, err := problem.Read(strings.NewReader("3 4\n1\n2 y\n3\n"))
	require.ErrorIs(s.T(), err, problem.ErrMalformed)
	require.Contains(s.T(), err.Error(), "line 3")
}

// TestReadIOError surfaces reader failures as-is.
func (s *ProblemSuite) TestReadIOError() {
	_, err := problem.Read(io.MultiReader(strings.NewReader("2 2\n1\n"), errReader{}))
	require.ErrorIs(s.T(), err, errBoom)
	require.False(s.T(), errors.Is(err, problem.ErrMalformed))
}

// TestWriteRoundTrip writes a problem and reads it back.
func (s *ProblemSuite) TestWriteRoundTrip() {
	in := &problem.Problem{Novels: 5, Preferences: [][]int{{5, 1}, {2}, {}, {1, 2, 3, 4, 5}}}
	var buf bytes.Buffer
	require.NoError(s.T(), problem.Write(&buf, in))
	require.Equal(s.T(), "4 5\n5 1\n2\n\n1 2 3 4 5\n", buf.String())

	out, err := problem.Read(&buf)
	require.NoError(s.T(), err)
	require.Equal(s.T(), in.Novels, out.Novels)
	require.Equal(s.T(), [][]int{{5, 1}, {2}, {}, {1, 2, 3, 4, 5}}, out.Preferences)
}

// TestWritePairs prints 1-based pairs with the smaller critic first.
func (s *ProblemSuite) TestWritePairs() {
	var buf bytes.Buffer
	err := problem.WritePairs(&buf, []matching.Pair{{A: 0, B: 1}, {A: 5, B: 2}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "1 2\n3 6\n", buf.String())
}

// TestReadOversizedHeader rejects critic counts no input satisfies without
// reserving memory for them.
func (s *ProblemSuite) TestReadOversizedHeader() {
	for _, in := range []string{
		"9223372036854775807 3\n1\n",
		"10000000000 3\n1\n2\n",
	} {
		_, err := problem.Read(strings.NewReader(in))
		require.ErrorIs(s.T(), err, problem.ErrMalformed, "input %q", in)
		require.Contains(s.T(), err.Error(), "found")
	}
}

func TestProblemSuite(t *testing.T) {
	suite.Run(t, new(ProblemSuite))
}

var errBoom = errors.New("boom")

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errBoom }
