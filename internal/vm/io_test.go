package vm

import (
	"bufio"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func inputFrom(s string) Input {
	return bufio.NewReader(strings.NewReader(s))
}

func TestInNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int64
		rest     string // what the next in(char) reads afterwards, "" for EOF
	}{
		{"plain", "42", []int64{42}, ""},
		{"negative", "-17", []int64{-17}, ""},
		{"explicit plus", "+5", []int64{5}, ""},
		{"leading whitespace", "  \t\n 9", []int64{9}, ""},
		{"stops at non-digit", "12ab", []int64{12}, "a"},
		{"newline terminated", "7\n", []int64{7}, "\n"},
		{"no digits", "abc", []int64{}, "a"},
		{"bare sign", "-x", []int64{}, "x"},
		{"empty input", "", []int64{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine(Config{Input: inputFrom(tc.input)})
			m.exec(OpInNumber, 0)
			if diff := cmp.Diff(tc.expected, append([]int64{}, m.stack...)); diff != "" {
				t.Errorf("stack mismatch (-expected +got):\n%s", diff)
			}

			m.setStack()
			m.exec(OpInChar, 0)
			if tc.rest == "" {
				if len(m.stack) != 0 {
					t.Errorf("expected EOF after number, read %q", rune(m.stack[0]))
				}
			} else if len(m.stack) != 1 || m.stack[0] != int64(tc.rest[0]) {
				t.Errorf("next char = %v, expected %q", m.stack, tc.rest)
			}
		})
	}
}

func TestInChar(t *testing.T) {
	m := newTestMachine(Config{Input: inputFrom("Aπ")})

	m.exec(OpInChar, 0)
	m.exec(OpInChar, 0)
	if diff := cmp.Diff([]int64{'A', 0x03C0}, append([]int64{}, m.stack...)); diff != "" {
		t.Errorf("stack mismatch (-expected +got):\n%s", diff)
	}

	// EOF skips.
	m.exec(OpInChar, 0)
	if len(m.stack) != 2 {
		t.Errorf("in(char) at EOF should skip, stack = %v", m.stack)
	}
}

func TestInputNilSkips(t *testing.T) {
	m := newTestMachine(Config{})
	m.exec(OpInChar, 0)
	m.exec(OpInNumber, 0)
	if len(m.stack) != 0 {
		t.Errorf("reads without input should skip, stack = %v", m.stack)
	}
}
