package icon

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrICOSize is returned for sizes an ICO directory entry cannot hold
// (above 256 px).
var ErrICOSize = errors.New("size not representable in ICO")

// icoEntry is one 16-byte ICONDIRENTRY. A zero Width or Height means 256.
type icoEntry struct {
	Width, Height uint8
	Colors        uint8
	Reserved      uint8
	Planes        uint16
	BitCount      uint16
	BytesInRes    uint32
	ImageOffset   uint32
}

// EncodeICO assembles an ICO file from PNG-encoded images, one directory
// entry per size in the given order.
func EncodeICO(sizes []int, pngs [][]byte) ([]byte, error) {
	if len(sizes) != len(pngs) {
		return nil, fmt.Errorf("ico: %d sizes but %d images", len(sizes), len(pngs))
	}
	for _, size := range sizes {
		if size < 1 || size > 256 {
			return nil, fmt.Errorf("%w: %d", ErrICOSize, size)
		}
	}

	var buf bytes.Buffer
	// ICONDIR: reserved, resource type 1, image count.
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(len(sizes))})

	// PNG payloads follow the directory back to back.
	next := uint32(6 + 16*len(sizes))
	for i, size := range sizes {
		dim := uint8(size % 256)
		binary.Write(&buf, binary.LittleEndian, icoEntry{
			Width:       dim,
			Height:      dim,
			Planes:      1,
			BitCount:    32,
			BytesInRes:  uint32(len(pngs[i])),
			ImageOffset: next,
		})
		next += uint32(len(pngs[i]))
	}
	for _, p := range pngs {
		buf.Write(p)
	}
	return buf.Bytes(), nil
}
