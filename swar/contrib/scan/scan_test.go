// Copyright 2025 go-swar Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scan

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func referenceNonASCII(s []byte) int {
	for i, b := range s {
		if b >= 0x80 {
			return i
		}
	}
	return -1
}

func randomBytes(r *rand.Rand, n int, alphabet string) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = alphabet[r.IntN(len(alphabet))]
	}
	return s
}

func TestIndexByte(t *testing.T) {
	tests := []struct {
		s    string
		c    byte
		want int
	}{
		{"", 'a', -1},
		{"a", 'a', 0},
		{"hello, world", 'w', 7},
		{"hello, world", 'z', -1},
		{"abcdefgh", 'h', 7},
		{"abcdefghi", 'i', 8},
		{"\x00\x00\x00", 0, 0},
		{"\xff\x80\x7f", 0x80, 1},
	}
	for _, tt := range tests {
		if got := IndexByte([]byte(tt.s), tt.c); got != tt.want {
			t.Errorf("IndexByte(%q, %q): got %d, want %d", tt.s, tt.c, got, tt.want)
		}
	}
}

func TestScanMatchesBytes(t *testing.T) {
	r := rand.New(rand.NewPCG(31, 32))
	alphabets := []string{"ab", "abc\x00", "\x00\x7f\x80\xff", "0123456789abcdef"}
	for n := range 70 {
		for _, alphabet := range alphabets {
			s := randomBytes(r, n, alphabet)
			for _, c := range []byte(alphabet + "z") {
				assert.Equal(t, bytes.IndexByte(s, c), IndexByte(s, c), "IndexByte(%q, %q)", s, c)
				assert.Equal(t, bytes.LastIndexByte(s, c), LastIndexByte(s, c), "LastIndexByte(%q, %q)", s, c)
				assert.Equal(t, bytes.Count(s, []byte{c}), Count(s, c), "Count(%q, %q)", s, c)
			}
			assert.Equal(t, bytes.IndexByte(s, 0), IndexZero(s), "IndexZero(%q)", s)
			assert.Equal(t, referenceNonASCII(s), IndexNonASCII(s), "IndexNonASCII(%q)", s)
		}
	}
}

func TestTailIgnoresPadding(t *testing.T) {
	// The zero padding of a short tail must not match.
	s := []byte("abcdefghij")
	assert.Equal(t, -1, IndexZero(s))
	assert.Equal(t, -1, IndexByte(s, 0))
	assert.Equal(t, -1, LastIndexByte(s, 0))
	assert.Equal(t, 0, Count(s, 0))
}

func TestLastIndexByte(t *testing.T) {
	assert.Equal(t, 12, LastIndexByte([]byte("a----b---a--a-"), 'a'))
	assert.Equal(t, 0, LastIndexByte([]byte("a-------------"), 'a'))
	assert.Equal(t, 15, LastIndexByte([]byte("---------------a"), 'a'))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, Count([]byte("banana"), 'a'))
	assert.Equal(t, 16, Count(bytes.Repeat([]byte{0xff}, 16), 0xff))
	assert.Equal(t, 0, Count(nil, 'x'))
}

func FuzzIndexByte(f *testing.F) {
	f.Add([]byte("hello, world"), byte('o'))
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8}, byte(8))
	f.Add([]byte{}, byte(0))
	f.Fuzz(func(t *testing.T, s []byte, c byte) {
		if got, want := IndexByte(s, c), bytes.IndexByte(s, c); got != want {
			t.Errorf("IndexByte(%q, %q): got %d, want %d", s, c, got, want)
		}
		if got, want := LastIndexByte(s, c), bytes.LastIndexByte(s, c); got != want {
			t.Errorf("LastIndexByte(%q, %q): got %d, want %d", s, c, got, want)
		}
		if got, want := Count(s, c), bytes.Count(s, []byte{c}); got != want {
			t.Errorf("Count(%q, %q): got %d, want %d", s, c, got, want)
		}
	})
}

func BenchmarkIndexByte(b *testing.B) {
	s := bytes.Repeat([]byte("abcdefgh"), 512)
	s = append(s, 'z')
	b.Run("swar", func(b *testing.B) {
		for b.Loop() {
			IndexByte(s, 'z')
		}
	})
	b.Run("bytes", func(b *testing.B) {
		for b.Loop() {
			bytes.IndexByte(s, 'z')
		}
	})
}
