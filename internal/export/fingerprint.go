package export

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"golang.org/x/crypto/blake2b"

	"github.com/Alia5/antennagen/geometry"
)

// Fingerprint hashes the exact bit pattern of every coordinate, so two
// results share a fingerprint only if they are bit-identical.
func Fingerprint(r *geometry.Result) string {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	writeString(h, r.Reference)
	writeString(h, r.Value)
	writeString(h, r.Label)

	writeUint(h, uint64(len(r.Segments)))
	for _, s := range r.Segments {
		writeFloats(h, s.Start.X, s.Start.Y, s.End.X, s.End.Y, s.Width)
		writeString(h, string(s.Layer))
	}
	for _, p := range r.Pads {
		writeString(h, p.Name)
		writeString(h, string(p.Shape))
		writeFloats(h, p.Position.X, p.Position.Y, p.Diameter, p.Drill)
	}
	if o := r.Outline; o != nil {
		writeString(h, string(o.Kind))
		writeString(h, string(o.Layer))
		writeFloats(h, o.Min.X, o.Min.Y, o.Max.X, o.Max.Y, o.Center.X, o.Center.Y, o.Radius, o.Stroke)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeFloats(h hash.Hash, vs ...float64) {
	for _, v := range vs {
		writeUint(h, math.Float64bits(v))
	}
}

func writeUint(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = h.Write(buf[:])
}

func writeString(h hash.Hash, s string) {
	writeUint(h, uint64(len(s)))
	_, _ = h.Write([]byte(s))
}
