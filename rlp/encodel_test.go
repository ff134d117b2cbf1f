/*
   Copyright 2021 Erigon contributors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package rlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeU64(t *testing.T) {
	buf := make([]byte, 9)

	n := EncodeU64(0, buf)
	require.Equal(t, []byte{0x80}, buf[:n])

	n = EncodeU64(7, buf)
	require.Equal(t, []byte{0x07}, buf[:n])

	n = EncodeU64(1024, buf)
	require.Equal(t, []byte{0x82, 0x04, 0x00}, buf[:n])
}

func TestEncodeString(t *testing.T) {
	buf := make([]byte, 64)

	EncodeString(nil, buf)
	require.Equal(t, byte(0x80), buf[0])

	EncodeString([]byte{0x01}, buf)
	require.Equal(t, byte(0x01), buf[0])

	EncodeString([]byte("dog"), buf)
	require.Equal(t, []byte{0x83, 'd', 'o', 'g'}, buf[:4])
}

func TestEncodeHash(t *testing.T) {
	h := make([]byte, 32)
	for i := range h {
		h[i] = byte(i)
	}
	buf := make([]byte, 33)
	n := EncodeHash(h, buf)
	require.Equal(t, 33, n)
	require.Equal(t, byte(128+32), buf[0])
	require.Equal(t, h, buf[1:33])
}

func TestEncodeListPrefix(t *testing.T) {
	buf := make([]byte, 10)

	n := EncodeListPrefix(3, buf)
	require.Equal(t, 1, n)
	require.Equal(t, byte(192+3), buf[0])
}
