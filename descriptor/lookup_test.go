package descriptor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_RoundTripProperties(t *testing.T) {
	descs := map[string]*Descriptor{
		"s1": s1Desc(),
		"s2": s2Desc(),
	}
	for name, d := range descs {
		t.Run(name, func(t *testing.T) {
			for i := range d.ValueCount() {
				idx := Index(i)
				value := d.ValueAt(idx)
				label, ok := d.LabelAt(idx)
				require.True(t, ok)

				vi := d.FindByValue(value)
				require.Equal(t, value, d.ValueAt(vi))

				li := d.FindByLabel(label)
				got, _ := d.LabelAt(li)
				require.Equal(t, label, got)

				require.Equal(t, idx, li, "labels are unique in %s", name)
				require.Equal(t, idx, vi, "values are unique in %s", name)
			}
		})
	}
}

func TestFind_Misses(t *testing.T) {
	d := s2Desc()

	require.Equal(t, Index(2), d.FindByLabel("VV3"))
	require.Equal(t, Index(2), d.FindByValue(-30))
	require.Equal(t, NotFound, d.FindByValue(-1))
	require.Equal(t, NotFound, d.FindByLabel("ZZZ"))
	require.Equal(t, NotFound, d.FindByLabel(""))
}

func TestFindByLabel_WholeString(t *testing.T) {
	d, err := Build("prefix", []Entry{
		{Value: 1, Label: "ABC"},
		{Value: 2, Label: "AB"},
	})
	require.NoError(t, err)

	require.Equal(t, NotFound, d.FindByLabel("A"))
	require.Equal(t, Index(1), d.FindByLabel("AB"), "AB must not match the ABC prefix")
	require.Equal(t, Index(0), d.FindByLabel("ABC"))
	require.Equal(t, NotFound, d.FindByLabel("ABCD"))
	require.Equal(t, NotFound, d.FindByLabel("prefix"), "the enum name is not a label")
}

func TestFind_DuplicatesResolveToFirst(t *testing.T) {
	d, err := Build("dup", []Entry{
		{Value: 1, Label: "A"},
		{Value: 1, Label: "B"},
		{Value: 2, Label: "A"},
	})
	require.NoError(t, err)

	require.Equal(t, Index(0), d.FindByValue(1))
	require.Equal(t, Index(1), d.FindByLabel("B"))
	require.Equal(t, Index(0), d.FindByLabel("A"))
	require.Equal(t, Index(2), d.FindByValue(2))
}

func TestValueOfLabelOf(t *testing.T) {
	d := s2Desc()

	assert.Equal(t, Value(12345), d.ValueOf("VV4", -9999))
	assert.Equal(t, Value(-9999), d.ValueOf("ZZZ", -9999))
	assert.Equal(t, "VV2", d.LabelOf(20, "?"))
	assert.Equal(t, "?", d.LabelOf(21, "?"))
}

func TestMetadataOf(t *testing.T) {
	d := s1Desc()

	meta, ok := d.MetadataOf(300)
	require.True(t, ok)
	require.Equal(t, "Tenth", meta)

	_, ok = d.MetadataOf(999)
	require.False(t, ok)

	_, ok = s2Desc().MetadataOf(10)
	require.False(t, ok, "no metadata array")
}

func TestFindByLabel_NULQueries(t *testing.T) {
	entries := []Entry{{Value: 1, Label: "A"}, {Value: 2, Label: "B"}}

	plain, err := Build("e", entries)
	require.NoError(t, err)
	indexed, err := Build("e", entries, WithHashIndex())
	require.NoError(t, err)

	queries := []string{"A\x00B", "B\x00", "A\x00", "\x00", "e\x00A", "B\x00\x00\x00"}
	for _, q := range queries {
		t.Run(fmt.Sprintf("%q", q), func(t *testing.T) {
			require.Equal(t, NotFound, DefaultFindByLabel(plain, q))
			require.Equal(t, NotFound, plain.FindByLabel(q))
			require.Equal(t, plain.FindByLabel(q), indexed.FindByLabel(q))
		})
	}

	// Whole labels still match once the query is NUL free.
	require.Equal(t, Index(1), plain.FindByLabel("B"))
	require.Equal(t, Index(1), indexed.FindByLabel("B"))
}

func TestFindByLabel_LastLabelBoundary(t *testing.T) {
	d := s2Desc()

	require.Equal(t, Index(3), d.FindByLabel("VV4"))
	require.Equal(t, NotFound, d.FindByLabel("VV4\x00\x00\x00\x00\x00\x00\x00"))
	require.Equal(t, NotFound, d.FindByLabel("VV"))
}

func TestContains(t *testing.T) {
	d := s2Desc()

	require.True(t, d.Contains(-30))
	require.False(t, d.Contains(30))
}

func BenchmarkFindByLabel(b *testing.B) {
	d := s1Desc()

	for b.Loop() {
		d.FindByLabel("ZZZ")
	}
}

func BenchmarkFindByValue(b *testing.B) {
	d := s1Desc()

	for b.Loop() {
		d.FindByValue(505)
	}
}
