// Package notation parses and formats move strings (C9): the token
// grammar is a face letter plus an optional modifier, collaborating with
// the CLI and the cubie-level move indices everywhere else in the
// module use.
package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SeamusWaldron/kociemba/internal/cubiecube"
)

var tokenPattern = regexp.MustCompile(`^[UDLRFB](['P2])?$`)

var faceBase = map[byte]cubiecube.MoveIndex{
	'U': cubiecube.MoveU,
	'R': cubiecube.MoveR,
	'F': cubiecube.MoveF,
	'D': cubiecube.MoveD,
	'L': cubiecube.MoveL,
	'B': cubiecube.MoveB,
}

// ParseMove parses a single token such as "R", "r2", or "Fp" into a move
// index. Case-insensitive; the prime modifier may be written as either
// ' or P, matching spec §4.9's regex.
func ParseMove(token string) (cubiecube.MoveIndex, error) {
	upper := strings.ToUpper(token)
	if !tokenPattern.MatchString(upper) {
		return 0, fmt.Errorf("notation: invalid move token %q", token)
	}

	base := faceBase[upper[0]]
	if len(upper) == 1 {
		return base, nil
	}

	switch upper[1] {
	case '2':
		return base + 1, nil
	case '\'', 'P':
		return base + 2, nil
	default:
		return 0, fmt.Errorf("notation: invalid move token %q", token)
	}
}

// FormatMove returns a move index's canonical notation: the bare face
// letter for a 90-degree turn, "2" for a half turn, and "'" for prime.
func FormatMove(m cubiecube.MoveIndex) string {
	return m.String()
}

// ParseSequence splits s on whitespace and parses each token, failing on
// the first invalid one.
func ParseSequence(s string) ([]cubiecube.MoveIndex, error) {
	fields := strings.Fields(s)
	seq := make([]cubiecube.MoveIndex, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, m)
	}
	return seq, nil
}

// FormatSequence renders a move sequence as whitespace-separated
// canonical notation.
func FormatSequence(seq []cubiecube.MoveIndex) string {
	tokens := make([]string, len(seq))
	for i, m := range seq {
		tokens[i] = FormatMove(m)
	}
	return strings.Join(tokens, " ")
}

// Invert reverses seq and inverts each move, so that applying the result
// undoes seq.
func Invert(seq []cubiecube.MoveIndex) []cubiecube.MoveIndex {
	return cubiecube.InvertSeq(seq)
}

// Simplify collapses consecutive same-face moves into a single quarter-
// turn count mod 4, dropping any that reduce to zero turns, per spec
// §4.9. It is a pure function: seq is left unmodified.
func Simplify(seq []cubiecube.MoveIndex) []cubiecube.MoveIndex {
	out := make([]cubiecube.MoveIndex, 0, len(seq))
	for _, m := range seq {
		if len(out) > 0 && out[len(out)-1].Face() == m.Face() {
			last := out[len(out)-1]
			combined := (quarterTurns(last) + quarterTurns(m)) % 4
			out = out[:len(out)-1]
			if combined != 0 {
				out = append(out, fromQuarterTurns(m.Face(), combined))
			}
			continue
		}
		out = append(out, m)
	}
	return out
}

// quarterTurns returns how many 90-degree clockwise turns m represents,
// in {1,2,3}.
func quarterTurns(m cubiecube.MoveIndex) int {
	switch int(m) % 3 {
	case 0:
		return 1
	case 1:
		return 2
	default:
		return 3
	}
}

// fromQuarterTurns builds the move index for face turned n quarter-turns
// clockwise, n in {1,2,3}.
func fromQuarterTurns(face, n int) cubiecube.MoveIndex {
	return cubiecube.MoveIndex(face*3 + (n - 1))
}
