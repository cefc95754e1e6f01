// Package projfile reads and writes editor project files.
//
// Project file format, after zstd decompression:
//
//	[4 bytes: header length (big-endian)]
//	[header JSON]
//	[raw .iop object pool bytes]
//
// The header carries what the editor keeps alongside the pool itself: custom
// object names, mask geometry, the VT version the pool targets and the last
// selection. Names are keyed by numeric object id at save time and
// re-attached to editor metadata on load.
package projfile

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/isobus-tools/vtpool/internal/iop"
	"github.com/isobus-tools/vtpool/internal/object"
	"github.com/isobus-tools/vtpool/internal/pool"
)

// Extension is the conventional project file suffix.
const Extension = ".vtp"

const (
	headerLengthSize = 4
	maxHeaderSize    = 10 * 1024 * 1024

	// formatVersion is bumped when the header or framing changes shape.
	formatVersion = 1
)

// File is the editor state persisted in a project file.
type File struct {
	Pool     *pool.Pool
	Names    map[object.ObjectID]string
	MaskSize uint16
	// SoftKeySize is the designator area of one soft key.
	SoftKeySize object.Size
	// LastSelected is NullID when nothing was selected at save time.
	LastSelected object.ObjectID
	VTVersion    object.VTVersion
}

type header struct {
	Format        int               `json:"format"`
	VTVersion     uint8             `json:"vt_version"`
	MaskSize      uint16            `json:"mask_size"`
	SoftKeyWidth  uint16            `json:"soft_key_width"`
	SoftKeyHeight uint16            `json:"soft_key_height"`
	LastSelected  uint16            `json:"last_selected"`
	Names         map[uint16]string `json:"names,omitempty"`
}

// Marshal serializes the project to its compressed wire form.
func (f *File) Marshal() ([]byte, error) {
	if f.Pool == nil {
		return nil, fmt.Errorf("project has no pool")
	}
	poolBytes, err := iop.Encode(f.Pool)
	if err != nil {
		return nil, fmt.Errorf("encoding pool: %w", err)
	}

	h := header{
		Format:        formatVersion,
		VTVersion:     uint8(f.VTVersion),
		MaskSize:      f.MaskSize,
		SoftKeyWidth:  f.SoftKeySize.Width,
		SoftKeyHeight: f.SoftKeySize.Height,
		LastSelected:  uint16(f.LastSelected),
	}
	if len(f.Names) > 0 {
		h.Names = make(map[uint16]string, len(f.Names))
		for id, name := range f.Names {
			h.Names[uint16(id)] = name
		}
	}
	headerJSON, err := json.Marshal(h)
	if err != nil {
		return nil, fmt.Errorf("marshaling header: %w", err)
	}

	var raw bytes.Buffer
	headerLen := make([]byte, headerLengthSize)
	binary.BigEndian.PutUint32(headerLen, uint32(len(headerJSON)))
	raw.Write(headerLen)
	raw.Write(headerJSON)
	raw.Write(poolBytes)

	var compressed bytes.Buffer
	encoder, err := zstd.NewWriter(&compressed)
	if err != nil {
		return nil, fmt.Errorf("creating zstd encoder: %w", err)
	}
	if _, err := encoder.Write(raw.Bytes()); err != nil {
		encoder.Close()
		return nil, fmt.Errorf("compressing: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("closing encoder: %w", err)
	}
	return compressed.Bytes(), nil
}

// Unmarshal parses a compressed project file. Failures leave no partial
// state; the returned File is complete or nil.
func Unmarshal(data []byte) (*File, error) {
	decoder, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	decompressed, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompressing: %w", err)
	}

	if len(decompressed) < headerLengthSize {
		return nil, fmt.Errorf("project file too small: %d bytes", len(decompressed))
	}
	headerLen := binary.BigEndian.Uint32(decompressed[:headerLengthSize])
	if headerLen > maxHeaderSize {
		return nil, fmt.Errorf("header too large: %d bytes", headerLen)
	}
	if int(headerLengthSize+headerLen) > len(decompressed) {
		return nil, fmt.Errorf("header length exceeds file size")
	}

	headerData := decompressed[headerLengthSize : headerLengthSize+headerLen]
	var h header
	if err := json.Unmarshal(headerData, &h); err != nil {
		return nil, fmt.Errorf("parsing header: %w", err)
	}
	if h.Format != formatVersion {
		return nil, fmt.Errorf("unsupported project format %d", h.Format)
	}

	version := object.DefaultVersion
	if h.VTVersion != 0 {
		version, err = object.ParseVTVersion(h.VTVersion)
		if err != nil {
			return nil, fmt.Errorf("parsing header: %w", err)
		}
	}

	p, err := iop.Decode(decompressed[headerLengthSize+headerLen:])
	if err != nil {
		return nil, fmt.Errorf("decoding pool: %w", err)
	}

	f := &File{
		Pool:         p,
		MaskSize:     h.MaskSize,
		SoftKeySize:  object.Size{Width: h.SoftKeyWidth, Height: h.SoftKeyHeight},
		LastSelected: object.ObjectID(h.LastSelected),
		VTVersion:    version,
	}
	if len(h.Names) > 0 {
		f.Names = make(map[object.ObjectID]string, len(h.Names))
		for id, name := range h.Names {
			f.Names[object.ObjectID(id)] = name
		}
	}
	return f, nil
}
