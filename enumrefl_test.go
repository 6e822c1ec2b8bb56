package enumrefl

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/enumrefl/descriptor"
	"github.com/arloliu/enumrefl/errs"
	"github.com/arloliu/enumrefl/format"
)

type currency int

const (
	usd currency = 840
	eur currency = 978
	jpy currency = 392
	gbp currency = 826
	aud currency = 36
)

func currencyEnum(t *testing.T) Enum[currency] {
	t.Helper()

	d, err := Build("currency", []Entry{
		{Value: int64(usd), Label: "USD", Meta: "$"},
		{Value: int64(eur), Label: "EUR", Meta: "€"},
		{Value: int64(jpy), Label: "JPY"},
		{Value: int64(gbp), Label: "GBP", Meta: "£"},
		{Value: int64(aud), Label: "AUD"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { Destroy(d) })

	return Of[currency](d)
}

func TestBuild(t *testing.T) {
	d, err := Build("s2", []Entry{{Value: 10, Label: "VV1"}, {Value: 20, Label: "VV2"}})
	require.NoError(t, err)
	require.Equal(t, "VV2", d.LabelOf(20, "?"))
	require.Equal(t, format.Owned, d.Ownership())

	Destroy(d)
	require.Equal(t, format.StateDestroyed, d.State())
}

func TestMustBuild_Panics(t *testing.T) {
	require.Panics(t, func() { MustBuild("", nil) })
	require.NotPanics(t, func() { Destroy(MustBuild("ok", nil)) })
}

func TestBuild_Error(t *testing.T) {
	_, err := Build("", nil)
	require.ErrorIs(t, err, errs.ErrEmptyName)
}

func TestEnum_StringParse(t *testing.T) {
	e := currencyEnum(t)

	require.Equal(t, "currency", e.Name())
	require.Equal(t, 5, e.Len())
	require.Equal(t, "EUR", e.String(eur))
	require.Equal(t, "currency(1)", e.String(currency(1)))

	v, ok := e.Parse("GBP")
	require.True(t, ok)
	require.Equal(t, gbp, v)

	_, ok = e.Parse("CHF")
	require.False(t, ok)

	require.True(t, e.IsValid(aud))
	require.False(t, e.IsValid(currency(0)))
}

func TestEnum_Metadata(t *testing.T) {
	e := currencyEnum(t)

	sym, ok := e.Metadata(usd)
	require.True(t, ok)
	require.Equal(t, "$", sym)

	sym, ok = e.Metadata(jpy)
	require.True(t, ok)
	require.Nil(t, sym)
}

func TestEnum_ValuesLabelsAll(t *testing.T) {
	e := currencyEnum(t)

	require.Equal(t, []currency{usd, eur, jpy, gbp, aud}, e.Values())
	require.Equal(t, []string{"USD", "EUR", "JPY", "GBP", "AUD"}, e.Labels())

	var got []string
	for v, label := range e.All() {
		got = append(got, label)
		if v == jpy {
			break
		}
	}
	require.Equal(t, []string{"USD", "EUR", "JPY"}, got)
}

func TestOf_NilUsesNull(t *testing.T) {
	e := Of[int8](nil)

	require.Same(t, descriptor.Null, e.Descriptor())
	require.Equal(t, 0, e.Len())
	require.Equal(t, format.NullName+"(3)", e.String(3))
}

func TestMustOf(t *testing.T) {
	type level uint8
	e := MustOf("level", []level{1, 2, 3}, []string{"LOW", "MID", "HIGH"}, descriptor.WithHashIndex())
	defer Destroy(e.Descriptor())

	require.Equal(t, "MID", e.String(2))
	v, ok := e.Parse("HIGH")
	require.True(t, ok)
	require.Equal(t, level(3), v)

	require.Panics(t, func() { MustOf("bad", []level{1}, nil) })
}
