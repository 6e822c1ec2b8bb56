package descriptor

import "strings"

const pad = "\x00\x00\x00\x00\x00\x00\x00\x00"

// s2Desc mirrors a generated descriptor for
// enum s2 { VV1 = 10, VV2 = 20, VV3 = -30, VV4 = 12345 }.
func s2Desc() *Descriptor {
	return Static(
		"s2\x00VV1\x00VV2\x00VV3\x00VV4\x00"+pad,
		[]Value{10, 20, -30, 12345},
		[]uint16{3, 7, 11, 15},
		nil,
		nil,
	)
}

// s1Desc is a 26 entry static descriptor AAA=100 ... ZZZ=505 with sparse metadata.
func s1Desc() *Descriptor {
	var (
		blob    strings.Builder
		values  []Value
		offsets []uint16
	)
	blob.WriteString("s1\x00")
	base := []Value{100, 200, 300, 400, 500}
	for i := range 26 {
		offsets = append(offsets, uint16(blob.Len())) //nolint:gosec
		c := string(rune('A' + i))
		blob.WriteString(c + c + c + "\x00")
		group := min(i/5, len(base)-1)
		values = append(values, base[group]+Value(i-5*group))
	}
	blob.WriteString(pad)

	meta := make([]any, 26)
	meta[0] = "First"
	meta[5] = "Fifth"
	meta[10] = "Tenth"
	meta[20] = "Twentieth"

	return Static(blob.String(), values, offsets, meta, nil)
}

func vvEntries() []Entry {
	return []Entry{
		{Value: 10, Label: "VV1"},
		{Value: 20, Label: "VV2"},
		{Value: -30, Label: "VV3"},
		{Value: 12345, Label: "VV4"},
	}
}
